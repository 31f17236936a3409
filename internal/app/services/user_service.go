package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/matching"
)

const (
	// Authenticated matches keep scores strictly above this floor.
	matchMinScore = 30
	// Anonymous quick-match keeps scores at or above this floor.
	quickMatchMinScore = 20
	// Both paths return at most this many candidates.
	matchLimit = 20
)

// UserService handles match scoring and the connection graph.
type UserService interface {
	// Matches scores every other profile against the subject's stored skills.
	Matches(ctx context.Context, userID int64) ([]dto.MatchResult, error)

	// QuickMatch scores ad-hoc skills against all profiles. excludeID is the
	// caller's id when a valid token accompanied the request, else 0.
	QuickMatch(ctx context.Context, skills []string, excludeID int64) ([]dto.MatchResult, error)

	// Connect records a directed edge from the caller to the target.
	Connect(ctx context.Context, fromID, toID int64) error
}

type userServiceImpl struct {
	userRepo repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

// Matches returns candidates scoring strictly above the floor, best first.
func (s *userServiceImpl) Matches(ctx context.Context, userID int64) ([]dto.MatchResult, error) {
	subject, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.userRepo.ListExcept(ctx, userID)
	if err != nil {
		return nil, err
	}

	scored := matching.Score(subject.Skills, candidates)
	top := matching.Top(scored, matchMinScore, false, matchLimit)
	return toMatchResults(top, true), nil
}

// QuickMatch returns candidates at or above the floor, best first.
func (s *userServiceImpl) QuickMatch(ctx context.Context, skills []string, excludeID int64) ([]dto.MatchResult, error) {
	candidates, err := s.userRepo.ListExcept(ctx, excludeID)
	if err != nil {
		return nil, err
	}

	scored := matching.Score(skills, candidates)
	top := matching.Top(scored, quickMatchMinScore, true, matchLimit)
	return toMatchResults(top, false), nil
}

// Connect is idempotent; unknown endpoints are silently ignored.
func (s *userServiceImpl) Connect(ctx context.Context, fromID, toID int64) error {
	if err := s.userRepo.AddConnection(ctx, fromID, toID); err != nil {
		return err
	}
	s.logger.Debug().Int64("from", fromID).Int64("to", toID).Msg("Connection recorded")
	return nil
}

func toMatchResults(matches []matching.Match, includeEmail bool) []dto.MatchResult {
	out := make([]dto.MatchResult, 0, len(matches))
	for _, m := range matches {
		r := dto.MatchResult{
			ID:         m.User.ID,
			Name:       m.User.Name,
			Role:       m.User.Role,
			Skills:     m.User.Skills,
			Industry:   m.User.Industry,
			Location:   m.User.Location,
			MatchScore: m.Score,
		}
		if includeEmail {
			r.Email = m.User.Email
		}
		out = append(out, r)
	}
	return out
}
