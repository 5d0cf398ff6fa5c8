// controllers/report.go
package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"spa-admin/models"
	"spa-admin/reports"
	"spa-admin/services"
	"spa-admin/utils"
)

// ReportController handles all reporting functions
type ReportController struct {
	*Base
}

// bindReportQuery reads the shared report filters from the query string.
func bindReportQuery(c *gin.Context, kind services.ReportKind) (services.ReportQuery, error) {
	q := services.ReportQuery{
		Kind:    kind,
		Method:  models.PaymentMethod(c.Query("method")),
		Query:   c.Query("q"),
		Client:  c.Query("client"),
		Service: c.Query("service"),
	}

	parseDay := func(field string) (time.Time, error) {
		v := c.Query(field)
		if v == "" {
			return time.Time{}, nil
		}
		d, err := utils.ParseDay(v)
		if err != nil {
			return time.Time{}, &services.ValidationError{Field: field, Message: err.Error()}
		}
		return d, nil
	}
	var err error
	if q.From, err = parseDay("from"); err != nil {
		return q, err
	}
	if q.To, err = parseDay("to"); err != nil {
		return q, err
	}

	if v := c.Query("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return q, &services.ValidationError{Field: "top", Message: "Invalid top value"}
		}
		q.TopN = n
	}
	if v := c.Query("status"); v != "" {
		st, err := models.ParseAppointmentStatus(v)
		if err != nil {
			return q, &services.ValidationError{Field: "status", Message: err.Error()}
		}
		q.Status = st
	}
	return q, nil
}

// GetReport builds one report and renders it as JSON or as a download.
func (rc *ReportController) GetReport(c *gin.Context) {
	kind, err := services.ParseReportKind(c.Param("kind"))
	if err != nil {
		rc.respondServiceError(c, err)
		return
	}
	format, err := reports.ParseFormat(c.Query("format"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	q, err := bindReportQuery(c, kind)
	if err != nil {
		rc.respondServiceError(c, err)
		return
	}

	res, err := services.NewReportService(rc.client(c), rc.Currency).Build(c.Request.Context(), q)
	if err != nil {
		rc.respondServiceError(c, err)
		return
	}

	if format == reports.FormatJSON {
		c.JSON(http.StatusOK, res)
		return
	}

	var buf bytes.Buffer
	if err := reports.Write(&buf, format, res.Table, rc.Now()); err != nil {
		rc.Logger.Error("failed to render report", "kind", kind, "format", format, "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	if name := format.Filename(res.Table); name != "" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
