package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spa-admin/models"
	"spa-admin/services"
	"spa-admin/utils"
)

type UserController struct {
	*Base
}

func (uc *UserController) service(c *gin.Context) *services.UserService {
	return services.NewUserService(uc.client(c), uc.Actions, uc.actor(c))
}

func (uc *UserController) GetUsers(c *gin.Context) {
	list, err := uc.service(c).List(c.Request.Context())
	if err != nil {
		uc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": services.FilterClients(list, c.Query("q"))})
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	user, err := uc.service(c).Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		uc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.service(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		uc.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
