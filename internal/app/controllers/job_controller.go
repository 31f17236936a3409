package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/services"
	"github.com/alumlink/alumlink/internal/middleware"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

// JobController handles the job board
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// List returns one page of open jobs, newest first
func (c *JobController) List(ctx *gin.Context) {
	page, limit := helpers.ParseListParams(ctx)
	filter := dto.JobFilter{
		Location: ctx.Query("location"),
		Type:     ctx.Query("type"),
		Skill:    ctx.Query("skill"),
		Page:     page,
		Limit:    limit,
	}

	resp, err := c.jobService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "jobs": resp.Jobs, "pagination": resp.Pagination})
}

// Create posts a new job owned by the caller
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if !bindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.Create(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "job": job})
}

// Apply adds the caller to the job's applicant list
func (c *JobController) Apply(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobService.Apply(ctx.Request.Context(), jobID, middleware.UserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Application submitted!"})
}

// Mine returns jobs the caller posted or applied to, selected by the
// type query parameter. Any other value answers an empty list.
func (c *JobController) Mine(ctx *gin.Context) {
	posted, applied, err := c.jobService.ListMine(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	jobs := []models.Job{}
	switch ctx.Query("type") {
	case "posted":
		jobs = posted
	case "applied":
		jobs = applied
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}
