package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spa-admin/models"
	"spa-admin/services"
	"spa-admin/utils"
)

type SettingsController struct {
	*Base
}

func (sc *SettingsController) service(c *gin.Context) *services.SettingsService {
	return services.NewSettingsService(sc.client(c), sc.Actions, sc.actor(c))
}

// GetSpaSettings answers 200 with a null record when nothing was saved yet.
func (sc *SettingsController) GetSpaSettings(c *gin.Context) {
	settings, err := sc.service(c).Spa(c.Request.Context())
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings, "exists": settings != nil})
}

func (sc *SettingsController) SaveSpaSettings(c *gin.Context) {
	var input models.SpaSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	settings, created, err := sc.service(c).SaveSpa(c.Request.Context(), input)
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	status, msg := http.StatusOK, "Settings updated successfully"
	if created {
		status, msg = http.StatusCreated, "Settings created successfully"
	}
	c.JSON(status, gin.H{"message": msg, "settings": settings})
}

func (sc *SettingsController) GetHomepageSettings(c *gin.Context) {
	settings, err := sc.service(c).Homepage(c.Request.Context())
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings, "exists": settings != nil})
}

// SaveHomepageSettings takes the same multipart shape the remote API expects.
func (sc *SettingsController) SaveHomepageSettings(c *gin.Context) {
	input := models.HomepageSettings{
		Brand: models.HomepageBrand{Name: c.PostForm("brand[name]")},
		Contact: models.HomepageContact{
			Email:   c.PostForm("contact[email]"),
			Phone:   c.PostForm("contact[phone]"),
			Address: c.PostForm("contact[address]"),
		},
		Content: models.HomepageContent{
			Heading:         c.PostForm("content[heading]"),
			Description:     c.PostForm("content[description]"),
			BodyDescription: c.PostForm("content[bodyDescription]"),
		},
	}
	logo, closer, err := formUpload(c, "logo")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid logo upload")
		return
	}
	defer closer.Close()

	settings, created, err := sc.service(c).SaveHomepage(c.Request.Context(), input, logo)
	if err != nil {
		sc.respondServiceError(c, err)
		return
	}
	status, msg := http.StatusOK, "Homepage settings updated successfully"
	if created {
		status, msg = http.StatusCreated, "Homepage settings created successfully"
	}
	c.JSON(status, gin.H{"message": msg, "settings": settings})
}
