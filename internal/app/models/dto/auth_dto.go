package dto

import "github.com/alumlink/alumlink/internal/app/models"

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Name     string      `json:"name" binding:"required" example:"Priya Sharma"`
	Email    string      `json:"email" binding:"required,email" example:"priya@example.com"`
	Password string      `json:"password" binding:"required,min=6" example:"password123"`
	Role     models.Role `json:"role" binding:"omitempty,oneof=student alumni admin" example:"student"`
	Skills   []string    `json:"skills"`
	Industry string      `json:"industry" example:"Tech"`
	Location string      `json:"location" example:"Bangalore"`
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"priya@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UserSummary is the compact user shape returned alongside a token.
type UserSummary struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// ProfileUser is the authenticated user's own profile shape.
type ProfileUser struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	Skills      []string    `json:"skills"`
	Industry    string      `json:"industry"`
	Location    string      `json:"location"`
	Connections []int64     `json:"connections"`
}

// ProfileResponse wraps the profile endpoint body.
type ProfileResponse struct {
	Success bool        `json:"success"`
	User    ProfileUser `json:"user"`
}
