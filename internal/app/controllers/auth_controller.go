package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/services"
	"github.com/alumlink/alumlink/internal/middleware"
)

// AuthController handles registration, login and profile retrieval
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates an account and returns a token for it
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Login verifies credentials and returns a fresh token
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Profile returns the authenticated user's own profile
func (c *AuthController) Profile(ctx *gin.Context) {
	resp, err := c.authService.GetProfile(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
