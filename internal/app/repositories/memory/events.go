package memory

import (
	"context"
	"sort"
	"time"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

func (r *eventRepo) Create(ctx context.Context, event *models.Event) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.id()
	if event.RSVPs == nil {
		event.RSVPs = []int64{}
	}
	s.events = append(s.events, cloneEvent(*event))
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.events {
		if s.events[i].ID == id {
			e := cloneEvent(s.events[i])
			return &e, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (r *eventRepo) List(ctx context.Context, filter dto.EventFilter, now time.Time) ([]models.Event, int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Event
	for i := range s.events {
		if repositories.MatchEvent(&s.events[i], filter, now) {
			matched = append(matched, cloneEvent(s.events[i]))
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	start, end := helpers.PageBounds(len(matched), filter.Page, filter.Limit)
	return matched[start:end], len(matched), nil
}

func (r *eventRepo) ListForUser(ctx context.Context, userID int64) ([]models.Event, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Event
	for i := range s.events {
		if s.events[i].Organizer == userID || s.events[i].HasRSVP(userID) {
			out = append(out, cloneEvent(s.events[i]))
		}
	}
	return out, nil
}

func (r *eventRepo) AddRSVP(ctx context.Context, eventID, userID int64) (*models.Event, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != eventID {
			continue
		}
		e := &s.events[i]
		if e.Status == models.EventStatusCompleted {
			return nil, apperrors.ErrEventNotFoundOrCompleted
		}
		if !e.HasRSVP(userID) {
			if e.MaxSpots != nil && len(e.RSVPs) >= *e.MaxSpots {
				return nil, apperrors.ErrEventFull
			}
			e.RSVPs = append(e.RSVPs, userID)
		}
		updated := cloneEvent(*e)
		return &updated, nil
	}
	return nil, apperrors.ErrEventNotFoundOrCompleted
}

func (r *eventRepo) Count(ctx context.Context) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events), nil
}

func (r *eventRepo) CountUpcoming(ctx context.Context, now time.Time) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for i := range s.events {
		if !s.events[i].Date.Before(now) {
			n++
		}
	}
	return n, nil
}

func (r *eventRepo) ListAll(ctx context.Context) ([]models.Event, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, 0, len(s.events))
	for i := range s.events {
		out = append(out, cloneEvent(s.events[i]))
	}
	return out, nil
}
