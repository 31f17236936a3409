package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/repositories"
)

// HealthController reports service liveness
type HealthController struct {
	store   *repositories.Store
	started time.Time
}

// NewHealthController creates a new HealthController
func NewHealthController(store *repositories.Store) *HealthController {
	return &HealthController{store: store, started: time.Now()}
}

// Health answers liveness probes with the active store driver
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"store":     c.store.Driver(),
		"uptime":    time.Since(c.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
