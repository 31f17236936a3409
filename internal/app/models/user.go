package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`                            // Unique identifier for the user
	Name        string    `json:"name" db:"name" example:"Priya Sharma"`             // Display name
	Email       string    `json:"email" db:"email" example:"priya@example.com"`      // Unique email address
	Password    string    `json:"-" db:"password"`                                   // Hashed password (excluded from JSON)
	Role        Role      `json:"role" db:"role" example:"alumni"`                   // student, alumni or admin
	Skills      []string  `json:"skills" db:"skills"`                                // Skill tags used by the matcher
	Industry    string    `json:"industry" db:"industry" example:"Tech"`             // Industry the user works in
	Location    string    `json:"location" db:"location" example:"Bangalore"`        // Home location
	Connections []int64   `json:"connections" db:"connections"`                      // Outgoing connection edges (directed)
	IsActive    bool      `json:"isActive" db:"is_active" example:"true"`            // Whether the account is active
	ProfilePic  string    `json:"profilePic,omitempty" db:"profile_pic"`             // Profile picture URL
	Joined      time.Time `json:"joined" db:"joined" example:"2024-01-01T10:00:00Z"` // Timestamp when the user registered
}

// HasConnection reports whether the user already holds an edge to target.
func (u *User) HasConnection(target int64) bool {
	for _, id := range u.Connections {
		if id == target {
			return true
		}
	}
	return false
}
