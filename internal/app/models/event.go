package models

import "time"

// Event defines an event with capacity-limited RSVPs.
type Event struct {
	ID          int64       `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Date        time.Time   `json:"date" db:"date"`
	Time        string      `json:"time" db:"time"` // Display time, e.g. "7:00 PM IST"
	Location    string      `json:"location" db:"location"`
	Type        EventType   `json:"type" db:"type"`
	Organizer   int64       `json:"organizer" db:"organizer"`
	RSVPs       []int64     `json:"rsvps" db:"rsvps"`                 // Attendee user ids (set semantics)
	MaxSpots    *int        `json:"maxSpots,omitempty" db:"max_spots"` // nil means uncapped
	IsOnline    bool        `json:"isOnline" db:"is_online"`
	Link        string      `json:"link,omitempty" db:"link"`
	Status      EventStatus `json:"status" db:"status"`

	// Related entities
	OrganizerRef *UserRef `json:"organizerRef,omitempty"`
}

// HasRSVP reports whether userID is already on the attendee list.
func (e *Event) HasRSVP(userID int64) bool {
	for _, id := range e.RSVPs {
		if id == userID {
			return true
		}
	}
	return false
}

// SpotsLeft returns the remaining capacity, or nil when the event is uncapped.
func (e *Event) SpotsLeft() *int {
	if e.MaxSpots == nil {
		return nil
	}
	left := *e.MaxSpots - len(e.RSVPs)
	return &left
}
