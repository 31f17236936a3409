package dto

import "github.com/alumlink/alumlink/internal/app/models"

// StatsResponse is the admin dashboard counters body.
type StatsResponse struct {
	Success        bool `json:"success"`
	Users          int  `json:"users"`
	Mentors        int  `json:"mentors"`
	Jobs           int  `json:"jobs"`
	Events         int  `json:"events"`
	Posts          int  `json:"posts"`
	Bookings       int  `json:"bookings"`
	UsersToday     int  `json:"usersToday"`
	JobsToday      int  `json:"jobsToday"`
	BookingsToday  int  `json:"bookingsToday"`
	UpcomingEvents int  `json:"upcomingEvents"`
}

// ExportResponse is the full data export. User password hashes are never
// serialized (excluded at the model level).
type ExportResponse struct {
	Success  bool             `json:"success"`
	Demo     bool             `json:"demoMode"`
	Users    []models.User    `json:"users"`
	Jobs     []models.Job     `json:"jobs"`
	Events   []models.Event   `json:"events"`
	Posts    []models.Post    `json:"posts"`
	Bookings []models.Booking `json:"bookings"`
}
