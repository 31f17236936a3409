package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

const eventColumns = "id, title, description, date, time, location, type, organizer, max_spots, rsvps, is_online, link, status"

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Type,
		&e.Organizer, &e.MaxSpots, &e.RSVPs, &e.IsOnline, &e.Link, &e.Status)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) Create(ctx context.Context, event *models.Event) error {
	if event.RSVPs == nil {
		event.RSVPs = []int64{}
	}

	query := `
		INSERT INTO events (title, description, date, time, location, type, organizer, max_spots, rsvps, is_online, link, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.Date, event.Time, event.Location, event.Type,
		event.Organizer, event.MaxSpots, event.RSVPs, event.IsOnline, event.Link,
		event.Status,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)
	e, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return e, nil
}

func (r *eventRepo) List(ctx context.Context, filter dto.EventFilter, now time.Time) ([]models.Event, int, error) {
	page, limit := helpers.NormalizePageLimit(filter.Page, filter.Limit)

	where := func(qb sq.SelectBuilder) sq.SelectBuilder {
		qb = qb.Where(sq.GtOrEq{"date": now})
		if filter.Type != "" {
			qb = qb.Where(sq.Eq{"type": filter.Type})
		}
		if filter.Location != "" {
			qb = qb.Where(sq.ILike{"location": "%" + filter.Location + "%"})
		}
		return qb
	}

	countQuery, countArgs, err := where(psql.Select("COUNT(*)").From("events")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build event count query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query, args, err := where(psql.Select(eventColumns).From("events")).
		OrderBy("date ASC, id").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build event query: %w", err)
	}

	events, err := r.queryEvents(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepo) ListForUser(ctx context.Context, userID int64) ([]models.Event, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM events WHERE organizer = $1 OR rsvps @> ARRAY[$1]::bigint[] ORDER BY date ASC, id",
		eventColumns)
	return r.queryEvents(ctx, query, userID)
}

func (r *eventRepo) queryEvents(ctx context.Context, query string, args ...any) ([]models.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepo) AddRSVP(ctx context.Context, eventID, userID int64) (*models.Event, error) {
	if r.strictCapacity {
		return r.addRSVPStrict(ctx, eventID, userID)
	}
	return r.addRSVPReadModify(ctx, eventID, userID)
}

// addRSVPReadModify mirrors the check-then-append flow: the capacity test and
// the append are separate statements, so two concurrent callers can both pass
// the check on a nearly full event.
func (r *eventRepo) addRSVPReadModify(ctx context.Context, eventID, userID int64) (*models.Event, error) {
	event, err := r.GetByID(ctx, eventID)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, apperrors.ErrEventNotFoundOrCompleted
	}
	if err != nil {
		return nil, err
	}
	if event.Status == models.EventStatusCompleted {
		return nil, apperrors.ErrEventNotFoundOrCompleted
	}
	if event.HasRSVP(userID) {
		return event, nil
	}
	if event.MaxSpots != nil && len(event.RSVPs) >= *event.MaxSpots {
		return nil, apperrors.ErrEventFull
	}

	query := `
		UPDATE events
		SET rsvps = array_append(rsvps, $2)
		WHERE id = $1 AND NOT rsvps @> ARRAY[$2]::bigint[]`
	if _, err := r.db.Exec(ctx, query, eventID, userID); err != nil {
		return nil, fmt.Errorf("failed to add rsvp: %w", err)
	}
	return r.GetByID(ctx, eventID)
}

// addRSVPStrict folds the capacity guard into the UPDATE itself so a full
// event can never be oversubscribed.
func (r *eventRepo) addRSVPStrict(ctx context.Context, eventID, userID int64) (*models.Event, error) {
	query := `
		UPDATE events
		SET rsvps = array_append(rsvps, $2)
		WHERE id = $1 AND status <> 'completed'
		  AND NOT rsvps @> ARRAY[$2]::bigint[]
		  AND (max_spots IS NULL OR cardinality(rsvps) < max_spots)`

	tag, err := r.db.Exec(ctx, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to add rsvp: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return r.GetByID(ctx, eventID)
	}

	event, err := r.GetByID(ctx, eventID)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, apperrors.ErrEventNotFoundOrCompleted
	}
	if err != nil {
		return nil, err
	}
	if event.Status == models.EventStatusCompleted {
		return nil, apperrors.ErrEventNotFoundOrCompleted
	}
	if event.HasRSVP(userID) {
		return event, nil
	}
	return nil, apperrors.ErrEventFull
}

func (r *eventRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}

func (r *eventRepo) CountUpcoming(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM events WHERE date >= $1", since).Scan(&n)
	return n, err
}

func (r *eventRepo) ListAll(ctx context.Context) ([]models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events ORDER BY id", eventColumns)
	return r.queryEvents(ctx, query)
}
