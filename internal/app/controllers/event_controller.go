package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/services"
	"github.com/alumlink/alumlink/internal/middleware"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

// EventController handles events and RSVPs
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// List returns one page of upcoming events, soonest first
func (c *EventController) List(ctx *gin.Context) {
	page, limit := helpers.ParseListParams(ctx)
	filter := dto.EventFilter{
		Type:     ctx.Query("type"),
		Location: ctx.Query("location"),
		Page:     page,
		Limit:    limit,
	}

	resp, err := c.eventService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "events": resp.Events, "pagination": resp.Pagination})
}

// Create adds a new event organized by the caller
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "event": event})
}

// RSVP adds the caller to the event's attendee list
func (c *EventController) RSVP(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.eventService.RSVP(ctx.Request.Context(), eventID, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Mine returns events the caller organizes or attends
func (c *EventController) Mine(ctx *gin.Context) {
	events, err := c.eventService.ListMine(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}
