package models

import "time"

// Job defines a job posting owned by the alumni user who created it.
type Job struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Company      string    `json:"company" db:"company"`
	Location     string    `json:"location" db:"location"`
	Type         JobType   `json:"type" db:"type"`
	Salary       string    `json:"salary" db:"salary"`
	Description  string    `json:"description" db:"description"`
	Skills       []string  `json:"skills" db:"skills"`
	PostedBy     int64     `json:"postedBy" db:"posted_by"`
	Applications []int64   `json:"applications" db:"applications"` // Applicant user ids (set semantics)
	Status       JobStatus `json:"status" db:"status"`
	PostedAt     time.Time `json:"postedAt" db:"posted_at"`

	// Related entities
	Poster *UserRef `json:"poster,omitempty"`
}

// HasApplicant reports whether userID already applied.
func (j *Job) HasApplicant(userID int64) bool {
	for _, id := range j.Applications {
		if id == userID {
			return true
		}
	}
	return false
}
