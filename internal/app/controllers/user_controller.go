package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/services"
	"github.com/alumlink/alumlink/internal/middleware"
)

// UserController handles matching and the connection graph
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Matches scores every other profile against the caller's stored skills
func (c *UserController) Matches(ctx *gin.Context) {
	matches, err := c.userService.Matches(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "matches": matches})
}

// QuickMatch scores ad-hoc skills without requiring an account. A valid
// bearer token excludes the caller from the results; an invalid one is
// silently ignored.
func (c *UserController) QuickMatch(ctx *gin.Context) {
	var req dto.QuickMatchRequest
	if !bindJSON(ctx, &req) {
		return
	}

	matches, err := c.userService.QuickMatch(ctx.Request.Context(), req.Skills, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.QuickMatchResponse{Success: true, Matches: matches})
}

// Connect records a directed connection from the caller to the target user
func (c *UserController) Connect(ctx *gin.Context) {
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.Connect(ctx.Request.Context(), middleware.UserID(ctx), targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Connection added!"})
}
