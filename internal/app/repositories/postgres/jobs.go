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

const jobColumns = "id, title, company, location, type, salary, description, skills, posted_by, applications, status, posted_at"

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Salary,
		&j.Description, &j.Skills, &j.PostedBy, &j.Applications, &j.Status, &j.PostedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *models.Job) error {
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if job.Applications == nil {
		job.Applications = []int64{}
	}

	query := `
		INSERT INTO jobs (title, company, location, type, salary, description, skills, posted_by, applications, status, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Location, job.Type, job.Salary, job.Description,
		job.Skills, job.PostedBy, job.Applications, job.Status, job.PostedAt,
	).Scan(&job.ID)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query := fmt.Sprintf("SELECT %s FROM jobs WHERE id = $1", jobColumns)
	j, err := scanJob(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

func (r *jobRepo) List(ctx context.Context, filter dto.JobFilter) ([]models.Job, int, error) {
	page, limit := helpers.NormalizePageLimit(filter.Page, filter.Limit)

	where := func(qb sq.SelectBuilder) sq.SelectBuilder {
		qb = qb.Where(sq.Eq{"status": models.JobStatusOpen})
		if filter.Location != "" {
			qb = qb.Where(sq.ILike{"location": "%" + filter.Location + "%"})
		}
		if filter.Type != "" {
			qb = qb.Where(sq.Eq{"type": filter.Type})
		}
		if filter.Skill != "" {
			qb = qb.Where("skills @> ARRAY[?]::text[]", filter.Skill)
		}
		return qb
	}

	countQuery, countArgs, err := where(psql.Select("COUNT(*)").From("jobs")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build job count query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	query, args, err := where(psql.Select(jobColumns).From("jobs")).
		OrderBy("posted_at DESC, id").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build job query: %w", err)
	}

	jobs, err := r.queryJobs(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) ListByPoster(ctx context.Context, userID int64) ([]models.Job, error) {
	query := fmt.Sprintf("SELECT %s FROM jobs WHERE posted_by = $1 ORDER BY posted_at DESC, id", jobColumns)
	return r.queryJobs(ctx, query, userID)
}

func (r *jobRepo) ListApplied(ctx context.Context, userID int64) ([]models.Job, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM jobs WHERE status = 'open' AND applications @> ARRAY[$1]::bigint[] ORDER BY posted_at DESC, id",
		jobColumns)
	return r.queryJobs(ctx, query, userID)
}

func (r *jobRepo) queryJobs(ctx context.Context, query string, args ...any) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) AddApplication(ctx context.Context, jobID, userID int64) error {
	// Single guarded UPDATE: appends only when the job is open and the
	// applicant is not already present.
	query := `
		UPDATE jobs
		SET applications = array_append(applications, $2)
		WHERE id = $1 AND status = 'open'
		  AND NOT applications @> ARRAY[$2]::bigint[]`

	tag, err := r.db.Exec(ctx, query, jobID, userID)
	if err != nil {
		return fmt.Errorf("failed to add application: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing updated: either already applied (a no-op success) or the job
	// is missing or closed.
	var status models.JobStatus
	err = r.db.QueryRow(ctx, "SELECT status FROM jobs WHERE id = $1", jobID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && status == models.JobStatusClosed) {
		return apperrors.ErrJobNotFoundOrClosed
	}
	if err != nil {
		return fmt.Errorf("failed to check job status: %w", err)
	}
	return nil
}

func (r *jobRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs").Scan(&n)
	return n, err
}

func (r *jobRepo) CountPostedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs WHERE posted_at >= $1", since).Scan(&n)
	return n, err
}

func (r *jobRepo) ListAll(ctx context.Context) ([]models.Job, error) {
	query := fmt.Sprintf("SELECT %s FROM jobs ORDER BY id", jobColumns)
	return r.queryJobs(ctx, query)
}
