package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/auth"
)

// CreateDemoData loads a small fixture set into an empty store so a fresh
// install has something to show. A store that already holds users is left
// untouched.
func CreateDemoData(ctx context.Context, store *repositories.Store, lgr zerolog.Logger) error {
	count, err := store.Users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int("users", count).Msg("Store already populated, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")

	password, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	now := time.Now()

	users := []*models.User{
		{
			Name: "Priya Sharma", Email: "priya@example.com", Password: password,
			Role: models.RoleAlumni, Skills: []string{"JavaScript", "React", "Node.js"},
			Industry: "Tech", Location: "Bangalore",
			Connections: []int64{}, IsActive: true, Joined: now,
		},
		{
			Name: "Arjun Mehta", Email: "arjun@example.com", Password: password,
			Role: models.RoleAlumni, Skills: []string{"Python", "Machine Learning", "Data Science"},
			Industry: "AI", Location: "Mumbai",
			Connections: []int64{}, IsActive: true, Joined: now,
		},
		{
			Name: "Sneha Patel", Email: "sneha@example.com", Password: password,
			Role: models.RoleStudent, Skills: []string{"Java", "Spring Boot"},
			Industry: "", Location: "Pune",
			Connections: []int64{}, IsActive: true, Joined: now,
		},
		{
			Name: "Admin", Email: "admin@alumlink.com", Password: password,
			Role: models.RoleAdmin, Skills: []string{},
			Connections: []int64{}, IsActive: true, Joined: now,
		},
	}

	for _, u := range users {
		if err := store.Users.Create(ctx, u); err != nil {
			return err
		}
	}

	jobs := []*models.Job{
		{
			Title: "SDE Intern", Company: "TechNova", Location: "Bangalore",
			Type: models.JobTypeInternship, Salary: "50k/month",
			Description: "Work on our React frontend and Node.js services.",
			Skills:      []string{"JavaScript", "React"},
			PostedBy:    users[0].ID, Applications: []int64{},
			Status: models.JobStatusOpen, PostedAt: now,
		},
		{
			Title: "ML Engineer", Company: "DataWorks", Location: "Mumbai",
			Type: models.JobTypeFulltime, Salary: "25 LPA",
			Description: "Build and ship production ML pipelines.",
			Skills:      []string{"Python", "Machine Learning"},
			PostedBy:    users[1].ID, Applications: []int64{},
			Status: models.JobStatusOpen, PostedAt: now,
		},
	}

	for _, j := range jobs {
		if err := store.Jobs.Create(ctx, j); err != nil {
			return err
		}
	}

	spots := 100
	event := &models.Event{
		Title:       "Tech Careers AMA",
		Description: "Ask alumni anything about breaking into tech.",
		Date:        now.AddDate(0, 0, 14),
		Time:        "7:00 PM IST",
		Location:    "Online",
		Type:        models.EventTypeAMA,
		Organizer:   users[0].ID,
		RSVPs:       []int64{},
		MaxSpots:    &spots,
		IsOnline:    true,
		Status:      models.EventStatusUpcoming,
	}
	if err := store.Events.Create(ctx, event); err != nil {
		return err
	}

	post := &models.Post{
		Title:     "Welcome to AlumLink",
		Content:   "Introduce yourself and tell us what you're working on.",
		Category:  models.PostCategoryGeneral,
		Author:    users[3].ID,
		Likes:     []int64{},
		Comments:  []models.Comment{},
		CreatedAt: now,
	}
	if err := store.Posts.Create(ctx, post); err != nil {
		return err
	}

	lgr.Info().Int("users", len(users)).Int("jobs", len(jobs)).Msg("Demo data seeded")
	return nil
}
