package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

// AdminService handles dashboard counters and the full data export.
type AdminService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	Export(ctx context.Context) (*dto.ExportResponse, error)
}

type adminServiceImpl struct {
	store  *repositories.Store
	logger zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(store *repositories.Store, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{store: store, logger: logger}
}

// Stats aggregates dashboard counters. "Today" counters use the server's
// local start of day.
func (s *adminServiceImpl) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	now := time.Now()
	dayStart := helpers.StartOfDay(now)

	stats := &dto.StatsResponse{Success: true}

	var err error
	if stats.Users, err = s.store.Users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Mentors, err = s.store.Users.CountMentors(ctx); err != nil {
		return nil, err
	}
	if stats.Jobs, err = s.store.Jobs.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Events, err = s.store.Events.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Posts, err = s.store.Posts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Bookings, err = s.store.Bookings.Count(ctx); err != nil {
		return nil, err
	}
	if stats.UsersToday, err = s.store.Users.CountJoinedSince(ctx, dayStart); err != nil {
		return nil, err
	}
	if stats.JobsToday, err = s.store.Jobs.CountPostedSince(ctx, dayStart); err != nil {
		return nil, err
	}
	if stats.BookingsToday, err = s.store.Bookings.CountCreatedSince(ctx, dayStart); err != nil {
		return nil, err
	}
	if stats.UpcomingEvents, err = s.store.Events.CountUpcoming(ctx, dayStart); err != nil {
		return nil, err
	}

	return stats, nil
}

// Export dumps every collection. Password hashes never serialize because the
// model excludes them from JSON.
func (s *adminServiceImpl) Export(ctx context.Context) (*dto.ExportResponse, error) {
	users, err := s.store.Users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.store.Jobs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.store.Events.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.store.Posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.store.Bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("users", len(users)).Msg("Data export generated")

	return &dto.ExportResponse{
		Success:  true,
		Demo:     s.store.Driver() == "memory",
		Users:    emptyIfNil(users),
		Jobs:     emptyIfNil(jobs),
		Events:   emptyIfNil(events),
		Posts:    emptyIfNil(posts),
		Bookings: emptyIfNil(bookings),
	}, nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
