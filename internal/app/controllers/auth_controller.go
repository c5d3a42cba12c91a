package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/services"
	"github.com/campusdesk/facultyhub/internal/middleware"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

// AuthController handles signup, login and logout
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup registers a new faculty account
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	faculty, err := ctrl.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, faculty)
}

// Login verifies credentials, issues a JWT and sets the token cookie
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.ErrInvalidCredentials)
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.SetCookie(middleware.TokenCookieName, resp.Token.AccessToken,
		resp.Token.ExpiresIn, "/", "", false, true)
	c.JSON(http.StatusOK, resp)
}

// Logout clears the token cookie. Tokens themselves stay stateless; clients
// holding a bearer token simply discard it.
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}
