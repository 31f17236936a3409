package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// JobType defines the employment type of a job posting
type JobType string

const (
	JobTypeFulltime   JobType = "fulltime"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
)

// JobStatus defines the lifecycle state of a job posting
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// EventType defines the kind of event
type EventType string

const (
	EventTypeWebinar  EventType = "webinar"
	EventTypeWorkshop EventType = "workshop"
	EventTypeReunion  EventType = "reunion"
	EventTypeAMA      EventType = "ama"
)

// EventStatus defines the lifecycle state of an event
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusLive      EventStatus = "live"
	EventStatusCompleted EventStatus = "completed"
)

// PostCategory defines the forum category of a post
type PostCategory string

const (
	PostCategoryJob     PostCategory = "job"
	PostCategoryAdvice  PostCategory = "advice"
	PostCategoryEvent   PostCategory = "event"
	PostCategoryGeneral PostCategory = "general"
)

// BookingStatus defines the lifecycle state of a mentorship booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// UserRef is a lightweight user reference embedded in responses in place of
// a fully expanded relation.
type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role,omitempty"`
}
