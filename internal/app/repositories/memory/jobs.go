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

func (r *jobRepo) Create(ctx context.Context, job *models.Job) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = s.id()
	if job.Applications == nil {
		job.Applications = []int64{}
	}
	s.jobs = append(s.jobs, cloneJob(*job))
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			j := cloneJob(s.jobs[i])
			return &j, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (r *jobRepo) List(ctx context.Context, filter dto.JobFilter) ([]models.Job, int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Job
	for i := range s.jobs {
		if repositories.MatchJob(&s.jobs[i], filter) {
			matched = append(matched, cloneJob(s.jobs[i]))
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PostedAt.After(matched[j].PostedAt)
	})

	start, end := helpers.PageBounds(len(matched), filter.Page, filter.Limit)
	return matched[start:end], len(matched), nil
}

func (r *jobRepo) ListByPoster(ctx context.Context, userID int64) ([]models.Job, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Job
	for i := range s.jobs {
		if s.jobs[i].PostedBy == userID {
			out = append(out, cloneJob(s.jobs[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PostedAt.After(out[j].PostedAt)
	})
	return out, nil
}

func (r *jobRepo) ListApplied(ctx context.Context, userID int64) ([]models.Job, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Job
	for i := range s.jobs {
		if s.jobs[i].Status == models.JobStatusOpen && s.jobs[i].HasApplicant(userID) {
			out = append(out, cloneJob(s.jobs[i]))
		}
	}
	return out, nil
}

func (r *jobRepo) AddApplication(ctx context.Context, jobID, userID int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID != jobID {
			continue
		}
		if s.jobs[i].Status == models.JobStatusClosed {
			return apperrors.ErrJobNotFoundOrClosed
		}
		if !s.jobs[i].HasApplicant(userID) {
			s.jobs[i].Applications = append(s.jobs[i].Applications, userID)
		}
		return nil
	}
	return apperrors.ErrJobNotFoundOrClosed
}

func (r *jobRepo) Count(ctx context.Context) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs), nil
}

func (r *jobRepo) CountPostedSince(ctx context.Context, since time.Time) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for i := range s.jobs {
		if !s.jobs[i].PostedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *jobRepo) ListAll(ctx context.Context) ([]models.Job, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Job, 0, len(s.jobs))
	for i := range s.jobs {
		out = append(out, cloneJob(s.jobs[i]))
	}
	return out, nil
}
