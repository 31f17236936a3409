package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/services"
	"github.com/alumlink/alumlink/internal/middleware"
)

// MentorController handles the mentor directory and bookings
type MentorController struct {
	mentorService services.MentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.MentorService) *MentorController {
	return &MentorController{mentorService: mentorService}
}

// List returns the public directory of active alumni mentors
func (c *MentorController) List(ctx *gin.Context) {
	filter := dto.MentorFilter{
		Skills:   ctx.Query("skills"),
		Location: ctx.Query("location"),
	}

	mentors, err := c.mentorService.ListMentors(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "mentors": mentors})
}

// Book creates a pending mentorship session for the caller
func (c *MentorController) Book(ctx *gin.Context) {
	var req dto.BookRequest
	if !bindJSON(ctx, &req) {
		return
	}

	booking, err := c.mentorService.Book(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.BookingResponse{Success: true, Booking: booking})
}

// Bookings returns the caller's sessions, both sides of the table
func (c *MentorController) Bookings(ctx *gin.Context) {
	asStudent, asMentor, err := c.mentorService.ListBookings(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "asStudent": asStudent, "asMentor": asMentor})
}

// UpdateBookingStatus transitions a booking's lifecycle state
func (c *MentorController) UpdateBookingStatus(ctx *gin.Context) {
	bookingID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.BookingStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	booking, err := c.mentorService.UpdateBookingStatus(ctx.Request.Context(),
		bookingID, middleware.UserID(ctx), middleware.Role(ctx), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BookingResponse{Success: true, Booking: booking})
}
