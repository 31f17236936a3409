package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
)

const bookingColumns = "id, student, mentor, date, time, topic, status, created_at"

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.Student, &b.Mentor, &b.Date, &b.Time, &b.Topic, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (student, mentor, date, time, topic, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		booking.Student, booking.Mentor, booking.Date, booking.Time,
		booking.Topic, booking.Status, booking.CreatedAt,
	).Scan(&booking.ID)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE id = $1", bookingColumns)
	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return b, nil
}

func (r *bookingRepo) ListForStudent(ctx context.Context, userID int64) ([]models.Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE student = $1 ORDER BY date ASC, id", bookingColumns)
	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepo) ListForMentor(ctx context.Context, userID int64) ([]models.Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE mentor = $1 ORDER BY date ASC, id", bookingColumns)
	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepo) queryBookings(ctx context.Context, query string, args ...any) ([]models.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
	query := fmt.Sprintf("UPDATE bookings SET status = $2 WHERE id = $1 RETURNING %s", bookingColumns)
	b, err := scanBooking(r.db.QueryRow(ctx, query, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return b, nil
}

func (r *bookingRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM bookings").Scan(&n)
	return n, err
}

func (r *bookingRepo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM bookings WHERE created_at >= $1", since).Scan(&n)
	return n, err
}

func (r *bookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings ORDER BY id", bookingColumns)
	return r.queryBookings(ctx, query)
}
