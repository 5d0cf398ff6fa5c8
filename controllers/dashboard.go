package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spa-admin/services"
)

type DashboardController struct {
	*Base
}

func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	overview, err := services.NewDashboardService(dc.client(c)).Overview(c.Request.Context(), dc.Now())
	if err != nil {
		dc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
