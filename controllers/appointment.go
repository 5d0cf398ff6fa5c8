// controllers/appointment.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spa-admin/services"
	"spa-admin/utils"
)

type AppointmentController struct {
	*Base
}

type CancelInput struct {
	Notes string `json:"notes"`
}

type RescheduleInput struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
}

func (ac *AppointmentController) service(c *gin.Context) *services.AppointmentService {
	return services.NewAppointmentService(ac.client(c), ac.Actions, ac.actor(c))
}

// GetAppointments loads the list, optionally filtered server-side by status
// and locally by ?q= and ?filter=.
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	if _, err := services.ParseStatusFilter("filter", c.Query("filter")); err != nil {
		ac.respondServiceError(c, err)
		return
	}
	list, err := ac.service(c).Load(c.Request.Context(), c.Query("status"))
	if err != nil {
		ac.respondServiceError(c, err)
		return
	}

	list = services.FilterAppointments(list, services.AppointmentFilter{
		Status: c.Query("filter"),
		Search: c.Query("q"),
	})
	c.JSON(http.StatusOK, gin.H{"appointments": list})
}

func (ac *AppointmentController) Approve(c *gin.Context) {
	out, err := ac.service(c).Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ac *AppointmentController) Cancel(c *gin.Context) {
	var input CancelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	out, err := ac.service(c).Cancel(c.Request.Context(), c.Param("id"), input.Notes)
	if err != nil {
		ac.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ac *AppointmentController) Complete(c *gin.Context) {
	out, err := ac.service(c).Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ac *AppointmentController) Reschedule(c *gin.Context) {
	var input RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	out, err := ac.service(c).Reschedule(c.Request.Context(), c.Param("id"), input.Date, input.StartTime)
	if err != nil {
		ac.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ac *AppointmentController) GetPayments(c *gin.Context) {
	summary, err := ac.service(c).PaymentHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ac *AppointmentController) RecordCashPayment(c *gin.Context) {
	var input services.CashPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	out, err := ac.service(c).RecordCashPayment(c.Request.Context(), input)
	if err != nil {
		ac.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}
