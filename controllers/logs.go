package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"spa-admin/utils"
)

type LogController struct {
	*Base
}

// GetActionLogs lists recent admin actions, newest first.
func (lc *LogController) GetActionLogs(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}
	logs, err := lc.Actions.List(c.Request.Context(), limit)
	if err != nil {
		lc.Logger.Error("failed to list action logs", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch action logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
