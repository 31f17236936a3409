package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
	"github.com/alumlink/alumlink/internal/pkg/dberrors"
)

const userColumns = "id, name, email, password, role, skills, industry, location, connections, is_active, profile_pic, joined"

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Skills,
		&u.Industry, &u.Location, &u.Connections, &u.IsActive, &u.ProfilePic, &u.Joined)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Skills == nil {
		user.Skills = []string{}
	}
	if user.Connections == nil {
		user.Connections = []int64{}
	}

	query := `
		INSERT INTO users (name, email, password, role, skills, industry, location, connections, is_active, profile_pic, joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Role, user.Skills,
		user.Industry, user.Location, user.Connections, user.IsActive,
		user.ProfilePic, user.Joined,
	).Scan(&user.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)
	u, err := scanUser(r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)",
		strings.ToLower(strings.TrimSpace(email))).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *userRepo) ListExcept(ctx context.Context, excludeID int64) ([]models.User, error) {
	qb := psql.Select(userColumns).From("users").OrderBy("id")
	if excludeID != 0 {
		qb = qb.Where(sq.NotEq{"id": excludeID})
	}
	return r.queryUsers(ctx, qb)
}

func (r *userRepo) ListMentors(ctx context.Context, filter dto.MentorFilter) ([]models.User, error) {
	qb := psql.Select(userColumns).From("users").
		Where(sq.Eq{"role": models.RoleAlumni, "is_active": true}).
		OrderBy("id")

	if filter.Skills != "" {
		if wanted := repositories.SplitSkills(filter.Skills); len(wanted) > 0 {
			// Exact element membership, any of the requested skills.
			qb = qb.Where("skills && ?::text[]", wanted)
		}
	}
	if filter.Location != "" {
		qb = qb.Where(sq.ILike{"location": "%" + filter.Location + "%"})
	}

	return r.queryUsers(ctx, qb)
}

func (r *userRepo) queryUsers(ctx context.Context, qb sq.SelectBuilder) ([]models.User, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepo) AddConnection(ctx context.Context, fromID, toID int64) error {
	// No-op when the edge exists or either endpoint is missing.
	query := `
		UPDATE users
		SET connections = array_append(connections, $2)
		WHERE id = $1
		  AND NOT connections @> ARRAY[$2]::bigint[]
		  AND EXISTS (SELECT 1 FROM users WHERE id = $2)`

	if _, err := r.db.Exec(ctx, query, fromID, toID); err != nil {
		return fmt.Errorf("failed to add connection: %w", err)
	}
	return nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}

func (r *userRepo) CountMentors(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE role = $1 AND is_active", models.RoleAlumni).Scan(&n)
	return n, err
}

func (r *userRepo) CountJoinedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE joined >= $1", since).Scan(&n)
	return n, err
}

func (r *userRepo) ListAll(ctx context.Context) ([]models.User, error) {
	return r.ListExcept(ctx, 0)
}
