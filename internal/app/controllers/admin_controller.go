package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/services"
	"github.com/alumlink/alumlink/internal/middleware"
)

// AdminController handles the admin dashboard
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Stats returns dashboard counters
func (c *AdminController) Stats(ctx *gin.Context) {
	stats, err := c.adminService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// Export dumps every collection as one JSON document
func (c *AdminController) Export(ctx *gin.Context) {
	export, err := c.adminService.Export(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, export)
}
