package dto

import "github.com/alumlink/alumlink/internal/app/models"

// Pagination is the list envelope shared by every paginated endpoint. Current
// echoes the requested page as-is, even past the last page.
type Pagination struct {
	Current    int `json:"current" example:"1"`
	TotalPages int `json:"totalPages" example:"3"`
	Total      int `json:"total" example:"25"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error" example:"resource not found"`
}

// MessageResponse is the uniform success body for simple mutations.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Application submitted!"`
}

// JobListResponse wraps a page of job postings.
type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	Pagination Pagination   `json:"pagination"`
}

// EventListResponse wraps a page of events.
type EventListResponse struct {
	Events     []models.Event `json:"events"`
	Pagination Pagination     `json:"pagination"`
}

// PostListResponse wraps a page of forum posts.
type PostListResponse struct {
	Posts      []models.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}
