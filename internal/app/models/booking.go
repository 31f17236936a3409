package models

import "time"

// Booking defines a mentorship session between a student and an alumni mentor.
type Booking struct {
	ID        int64         `json:"id" db:"id"`
	Student   int64         `json:"student" db:"student"`
	Mentor    int64         `json:"mentor" db:"mentor"`
	Date      time.Time     `json:"date" db:"date"`
	Time      string        `json:"time" db:"time"`
	Topic     string        `json:"topic" db:"topic"`
	Status    BookingStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`

	// Related entities
	StudentRef *UserRef `json:"studentRef,omitempty"`
	MentorRef  *UserRef `json:"mentorRef,omitempty"`
}
