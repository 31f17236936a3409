package dto

import (
	"time"

	"github.com/alumlink/alumlink/internal/app/models"
)

// BookRequest is the payload for booking a mentorship session.
type BookRequest struct {
	MentorID int64     `json:"mentorId" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Time     string    `json:"time"`
	Topic    string    `json:"topic"`
}

// BookingStatusRequest updates the lifecycle state of a booking.
type BookingStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

// BookingResponse wraps a single booking mutation result.
type BookingResponse struct {
	Success bool            `json:"success"`
	Booking *models.Booking `json:"booking"`
}

// MentorFilter carries the mentor directory query parameters.
type MentorFilter struct {
	Skills   string // comma-separated, any-of exact membership
	Location string
}

// Mentor is the public mentor directory entry.
type Mentor struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Industry   string   `json:"industry"`
	Location   string   `json:"location"`
	ProfilePic string   `json:"profilePic"`
}
