package dto

import (
	"time"

	"github.com/alumlink/alumlink/internal/app/models"
)

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Title       string           `json:"title" binding:"required" example:"Tech Careers AMA"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date" binding:"required" example:"2026-09-15T19:00:00Z"`
	Time        string           `json:"time" example:"7:00 PM IST"`
	Location    string           `json:"location" example:"Online"`
	Type        models.EventType `json:"type" binding:"omitempty,oneof=webinar workshop reunion ama" example:"webinar"`
	MaxSpots    *int             `json:"maxSpots" binding:"omitempty,min=1"`
	IsOnline    bool             `json:"isOnline"`
	Link        string           `json:"link"`
}

// EventFilter carries the list query parameters for events.
type EventFilter struct {
	Type     string
	Location string
	Page     int
	Limit    int
}

// RSVPResponse is returned after a successful RSVP. SpotsLeft is null for
// uncapped events.
type RSVPResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	SpotsLeft *int          `json:"spotsLeft"`
	Event     *models.Event `json:"event"`
}
