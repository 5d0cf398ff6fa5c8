package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"spa-admin/api"
	"spa-admin/utils"
)

type AuthController struct {
	*Base
}

type GoogleLoginInput struct {
	Code     string `json:"code"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLogin exchanges an authorization code or credentials with the remote
// API and hands the resulting token back to the console.
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var input GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Code == "" && (input.Email == "" || input.Password == "") {
		utils.RespondWithError(c, http.StatusBadRequest, "Authorization code or email and password are required")
		return
	}

	res, err := ac.API.ExchangeGoogle(c.Request.Context(), api.GoogleLogin(input))
	if err != nil {
		ac.respondServiceError(c, err)
		return
	}

	now := ac.Now()
	sess, err := api.ParseSession(res.Token, now)
	if err != nil {
		ac.Logger.Warn("remote api issued an unusable token", "error", err)
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized access")
		return
	}
	utils.SetSessionCookie(c, sess, now)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"token":     sess.Token,
		"expiresAt": sess.ExpiresAt,
		"user": gin.H{
			"firstName": res.FirstName,
			"lastName":  res.LastName,
			"email":     res.Email,
		},
	})
}

// Logout only drops the cookie; tokens are not revocable from here.
func (ac *AuthController) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
