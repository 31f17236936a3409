package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

// EventService handles events and RSVPs.
type EventService interface {
	Create(ctx context.Context, organizerID int64, req dto.CreateEventRequest) (*models.Event, error)
	List(ctx context.Context, filter dto.EventFilter) (*dto.EventListResponse, error)

	// RSVP adds the caller to the attendee list and reports the remaining
	// capacity. A repeat RSVP succeeds without effect.
	RSVP(ctx context.Context, eventID, userID int64) (*dto.RSVPResponse, error)

	// ListMine returns events the user organizes or attends.
	ListMine(ctx context.Context, userID int64) ([]models.Event, error)
}

type eventServiceImpl struct {
	eventRepo repositories.EventRepository
	userRepo  repositories.UserRepository
	logger    zerolog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo repositories.EventRepository, userRepo repositories.UserRepository, logger zerolog.Logger) EventService {
	return &eventServiceImpl{eventRepo: eventRepo, userRepo: userRepo, logger: logger}
}

func (s *eventServiceImpl) Create(ctx context.Context, organizerID int64, req dto.CreateEventRequest) (*models.Event, error) {
	eventType := req.Type
	if eventType == "" {
		eventType = models.EventTypeWebinar
	}

	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    strings.TrimSpace(req.Location),
		Type:        eventType,
		Organizer:   organizerID,
		RSVPs:       []int64{},
		MaxSpots:    req.MaxSpots,
		IsOnline:    req.IsOnline,
		Link:        req.Link,
		Status:      models.EventStatusUpcoming,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventId", event.ID).Int64("organizer", organizerID).Msg("Event created")

	if user, err := s.userRepo.GetByID(ctx, organizerID); err == nil {
		event.OrganizerRef = &models.UserRef{ID: user.ID, Name: user.Name, Role: user.Role}
	}
	return event, nil
}

func (s *eventServiceImpl) List(ctx context.Context, filter dto.EventFilter) (*dto.EventListResponse, error) {
	events, total, err := s.eventRepo.List(ctx, filter, time.Now())
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}

	s.attachOrganizers(ctx, events)

	return &dto.EventListResponse{
		Events:     events,
		Pagination: helpers.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *eventServiceImpl) RSVP(ctx context.Context, eventID, userID int64) (*dto.RSVPResponse, error) {
	event, err := s.eventRepo.AddRSVP(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("eventId", eventID).Int64("userId", userID).Msg("RSVP recorded")

	return &dto.RSVPResponse{
		Success:   true,
		Message:   "RSVP confirmed!",
		SpotsLeft: event.SpotsLeft(),
		Event:     event,
	}, nil
}

func (s *eventServiceImpl) ListMine(ctx context.Context, userID int64) ([]models.Event, error) {
	events, err := s.eventRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *eventServiceImpl) attachOrganizers(ctx context.Context, events []models.Event) {
	cache := map[int64]*models.UserRef{}
	for i := range events {
		ref, ok := cache[events[i].Organizer]
		if !ok {
			user, err := s.userRepo.GetByID(ctx, events[i].Organizer)
			if err == nil {
				ref = &models.UserRef{ID: user.ID, Name: user.Name, Role: user.Role}
			}
			cache[events[i].Organizer] = ref
		}
		events[i].OrganizerRef = ref
	}
}
