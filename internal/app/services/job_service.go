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

// JobService handles job postings and applications.
type JobService interface {
	Create(ctx context.Context, posterID int64, req dto.CreateJobRequest) (*models.Job, error)
	List(ctx context.Context, filter dto.JobFilter) (*dto.JobListResponse, error)

	// Apply adds the caller to the job's applicant set. Re-applying succeeds
	// without effect.
	Apply(ctx context.Context, jobID, userID int64) error

	// ListMine returns jobs the user posted and jobs they applied to.
	ListMine(ctx context.Context, userID int64) (posted, applied []models.Job, err error)
}

type jobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	logger   zerolog.Logger
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository, logger zerolog.Logger) JobService {
	return &jobServiceImpl{jobRepo: jobRepo, userRepo: userRepo, logger: logger}
}

func (s *jobServiceImpl) Create(ctx context.Context, posterID int64, req dto.CreateJobRequest) (*models.Job, error) {
	jobType := req.Type
	if jobType == "" {
		jobType = models.JobTypeInternship
	}

	job := &models.Job{
		Title:        strings.TrimSpace(req.Title),
		Company:      strings.TrimSpace(req.Company),
		Location:     strings.TrimSpace(req.Location),
		Type:         jobType,
		Salary:       req.Salary,
		Description:  req.Description,
		Skills:       req.Skills,
		PostedBy:     posterID,
		Applications: []int64{},
		Status:       models.JobStatusOpen,
		PostedAt:     time.Now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobId", job.ID).Int64("postedBy", posterID).Msg("Job posted")

	if user, err := s.userRepo.GetByID(ctx, posterID); err == nil {
		job.Poster = &models.UserRef{ID: user.ID, Name: user.Name, Role: user.Role}
	}
	return job, nil
}

func (s *jobServiceImpl) List(ctx context.Context, filter dto.JobFilter) (*dto.JobListResponse, error) {
	jobs, total, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	s.attachPosters(ctx, jobs)

	return &dto.JobListResponse{
		Jobs:       jobs,
		Pagination: helpers.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *jobServiceImpl) Apply(ctx context.Context, jobID, userID int64) error {
	if err := s.jobRepo.AddApplication(ctx, jobID, userID); err != nil {
		return err
	}
	s.logger.Debug().Int64("jobId", jobID).Int64("userId", userID).Msg("Application recorded")
	return nil
}

func (s *jobServiceImpl) ListMine(ctx context.Context, userID int64) ([]models.Job, []models.Job, error) {
	posted, err := s.jobRepo.ListByPoster(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	applied, err := s.jobRepo.ListApplied(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if posted == nil {
		posted = []models.Job{}
	}
	if applied == nil {
		applied = []models.Job{}
	}
	return posted, applied, nil
}

// attachPosters fills the embedded poster reference. Lookup failures leave
// the reference nil rather than failing the listing.
func (s *jobServiceImpl) attachPosters(ctx context.Context, jobs []models.Job) {
	cache := map[int64]*models.UserRef{}
	for i := range jobs {
		ref, ok := cache[jobs[i].PostedBy]
		if !ok {
			user, err := s.userRepo.GetByID(ctx, jobs[i].PostedBy)
			if err == nil {
				ref = &models.UserRef{ID: user.ID, Name: user.Name, Role: user.Role}
			}
			cache[jobs[i].PostedBy] = ref
		}
		jobs[i].Poster = ref
	}
}
