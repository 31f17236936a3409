package dto

import "github.com/alumlink/alumlink/internal/app/models"

// QuickMatchRequest is the anonymous quick-match payload.
type QuickMatchRequest struct {
	Skills []string `json:"skills"`
}

// MatchResult is one scored candidate profile. Email is only filled on the
// authenticated matches path.
type MatchResult struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email,omitempty"`
	Role       models.Role `json:"role"`
	Skills     []string    `json:"skills"`
	Industry   string      `json:"industry"`
	Location   string      `json:"location"`
	MatchScore int         `json:"matchScore"`
}

// QuickMatchResponse wraps the anonymous quick-match body.
type QuickMatchResponse struct {
	Success bool          `json:"success"`
	Matches []MatchResult `json:"matches"`
}
