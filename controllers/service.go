// controllers/service.go
package controllers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"spa-admin/api"
	"spa-admin/models"
	"spa-admin/services"
	"spa-admin/utils"
)

type ServiceController struct {
	*Base
}

type ServiceStatusInput struct {
	Status models.ServiceStatus `json:"status"`
}

func (sc *ServiceController) service(c *gin.Context) *services.CatalogService {
	return services.NewCatalogService(sc.client(c), sc.Actions, sc.actor(c))
}

// bindServiceForm reads the multipart fields of the service editor.
func bindServiceForm(c *gin.Context) (api.ServiceForm, error) {
	form := api.ServiceForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}
	price, err := decimal.NewFromString(strings.TrimSpace(c.PostForm("price")))
	if err != nil {
		return form, &services.ValidationError{Field: "price", Message: "Invalid price"}
	}
	form.Price = price

	duration, err := strconv.Atoi(strings.TrimSpace(c.PostForm("duration")))
	if err != nil {
		return form, &services.ValidationError{Field: "duration", Message: "Invalid duration"}
	}
	form.Duration = duration
	return form, nil
}

// formUpload opens an optional file part. The caller closes the returned closer.
func formUpload(c *gin.Context, field string) (*api.Upload, io.Closer, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, io.NopCloser(nil), nil
	}
	if err != nil {
		return nil, nil, err
	}
	return openUpload(header)
}

func openUpload(header *multipart.FileHeader) (*api.Upload, io.Closer, error) {
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &api.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        f,
	}, f, nil
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	list, err := sc.service(c).List(c.Request.Context())
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services.FilterServices(list, c.Query("q"))})
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	form, err := bindServiceForm(c)
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	image, closer, err := formUpload(c, "image")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid image upload")
		return
	}
	defer closer.Close()

	svc, err := sc.service(c).Create(c.Request.Context(), form, image)
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Service created successfully", "service": svc})
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	form, err := bindServiceForm(c)
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	image, closer, err := formUpload(c, "image")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid image upload")
		return
	}
	defer closer.Close()

	svc, err := sc.service(c).Update(c.Request.Context(), c.Param("id"), form, image)
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully", "service": svc})
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	if err := sc.service(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		sc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// SetServiceStatus sets availability; an empty body, sized or chunked, toggles it.
func (sc *ServiceController) SetServiceStatus(c *gin.Context) {
	var input ServiceStatusInput
	raw, err := c.GetRawData()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := binding.JSON.BindBody(raw, &input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
	}
	svc, err := sc.service(c).ToggleStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service status updated", "service": svc})
}
