package memory

import (
	"context"
	"strings"
	"time"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
)

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := strings.ToLower(strings.TrimSpace(user.Email))
	for i := range s.users {
		if s.users[i].Email == normalized {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	user.ID = s.id()
	user.Email = normalized
	if user.Connections == nil {
		user.Connections = []int64{}
	}
	s.users = append(s.users, cloneUser(*user))
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := cloneUser(s.users[i])
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == normalized {
			u := cloneUser(s.users[i])
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == apperrors.ErrUserNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *userRepo) ListExcept(ctx context.Context, excludeID int64) ([]models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for i := range s.users {
		if s.users[i].ID == excludeID {
			continue
		}
		out = append(out, cloneUser(s.users[i]))
	}
	return out, nil
}

func (r *userRepo) ListMentors(ctx context.Context, filter dto.MentorFilter) ([]models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.User
	for i := range s.users {
		if repositories.MatchMentor(&s.users[i], filter) {
			out = append(out, cloneUser(s.users[i]))
		}
	}
	return out, nil
}

func (r *userRepo) AddConnection(ctx context.Context, fromID, toID int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	var from *models.User
	found := false
	for i := range s.users {
		if s.users[i].ID == fromID {
			from = &s.users[i]
		}
		if s.users[i].ID == toID {
			found = true
		}
	}
	// Missing endpoints make the call a no-op, not an error.
	if from == nil || !found {
		return nil
	}
	if !from.HasConnection(toID) {
		from.Connections = append(from.Connections, toID)
	}
	return nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

func (r *userRepo) CountMentors(ctx context.Context) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for i := range s.users {
		if s.users[i].Role == models.RoleAlumni && s.users[i].IsActive {
			n++
		}
	}
	return n, nil
}

func (r *userRepo) CountJoinedSince(ctx context.Context, since time.Time) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for i := range s.users {
		if !s.users[i].Joined.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *userRepo) ListAll(ctx context.Context) ([]models.User, error) {
	return r.ListExcept(ctx, 0)
}
