package dto

import "github.com/alumlink/alumlink/internal/app/models"

// CreateJobRequest is the payload for posting a job.
type CreateJobRequest struct {
	Title       string         `json:"title" binding:"required" example:"SDE Intern"`
	Company     string         `json:"company" binding:"required" example:"Google"`
	Location    string         `json:"location" example:"Bangalore"`
	Type        models.JobType `json:"type" binding:"omitempty,oneof=fulltime internship contract" example:"internship"`
	Salary      string         `json:"salary" example:"50k/month"`
	Description string         `json:"description"`
	Skills      []string       `json:"skills"`
}

// JobFilter carries the list query parameters for jobs.
type JobFilter struct {
	Location string
	Type     string
	Skill    string
	Page     int
	Limit    int
}
