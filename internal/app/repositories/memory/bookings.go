package memory

import (
	"context"
	"sort"
	"time"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
)

func (r *bookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.id()
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}

func (r *bookingRepo) ListForStudent(ctx context.Context, userID int64) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.Student == userID })
}

func (r *bookingRepo) ListForMentor(ctx context.Context, userID int64) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.Mentor == userID })
}

func (r *bookingRepo) list(keep func(*models.Booking) bool) ([]models.Booking, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Booking
	for i := range s.bookings {
		if keep(&s.bookings[i]) {
			out = append(out, s.bookings[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}

func (r *bookingRepo) Count(ctx context.Context) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings), nil
}

func (r *bookingRepo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for i := range s.bookings {
		if !s.bookings[i].CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *bookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.bookings))
	out = append(out, s.bookings...)
	return out, nil
}
