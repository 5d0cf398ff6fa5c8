package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spa-admin/api"
	"spa-admin/services"
	"spa-admin/utils"
)

// Base carries what every controller needs. The API client here has no
// session; handlers scope it to the caller with client(c).
type Base struct {
	API      *api.Client
	Actions  services.ActionLogger
	Currency string
	Logger   *slog.Logger
	Now      func() time.Time
}

func NewBase(client *api.Client, actions services.ActionLogger, currency string, logger *slog.Logger) *Base {
	if actions == nil {
		actions = services.NopActionLogger{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Base{API: client, Actions: actions, Currency: currency, Logger: logger, Now: time.Now}
}

func (b *Base) client(c *gin.Context) *api.Client {
	return b.API.WithSession(utils.SessionFrom(c))
}

func (b *Base) actor(c *gin.Context) string {
	return utils.SessionFrom(c).Actor()
}

// respondServiceError maps service and API errors onto HTTP responses.
func (b *Base) respondServiceError(c *gin.Context, err error) {
	var validation *services.ValidationError
	var apiErr *api.Error

	switch {
	case errors.As(err, &validation):
		utils.RespondWithError(c, http.StatusBadRequest, validation.Message)
	case errors.Is(err, services.ErrAppointmentNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
	case errors.Is(err, services.ErrServiceNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
	case errors.As(err, &apiErr):
		if apiErr.Status == http.StatusUnauthorized {
			utils.ClearSessionCookie(c)
			c.Header(utils.RedirectHdr, utils.SignInPath)
		}
		utils.RespondWithError(c, apiErr.Status, apiErr.Message)
	default:
		b.Logger.Error("remote api request failed",
			"path", c.Request.URL.Path,
			"error", err,
		)
		utils.RespondWithError(c, http.StatusBadGateway, "Unable to reach the spa API")
	}
}
