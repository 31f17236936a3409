package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = s.id()
	if post.Likes == nil {
		post.Likes = []int64{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	s.posts = append(s.posts, clonePost(*post))
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			p := clonePost(s.posts[i])
			return &p, nil
		}
	}
	return nil, apperrors.ErrPostNotFound
}

func (r *postRepo) List(ctx context.Context, filter dto.PostFilter) ([]models.Post, int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Post
	for i := range s.posts {
		if repositories.MatchPost(&s.posts[i], filter) {
			matched = append(matched, clonePost(s.posts[i]))
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	start, end := helpers.PageBounds(len(matched), filter.Page, filter.Limit)
	return matched[start:end], len(matched), nil
}

func (r *postRepo) ListByAuthor(ctx context.Context, userID int64) ([]models.Post, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Post
	for i := range s.posts {
		if s.posts[i].Author == userID {
			out = append(out, clonePost(s.posts[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *postRepo) ToggleLike(ctx context.Context, postID, userID int64) (*models.Post, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		p := &s.posts[i]
		removed := false
		for j, id := range p.Likes {
			if id == userID {
				p.Likes = append(p.Likes[:j], p.Likes[j+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			p.Likes = append(p.Likes, userID)
		}
		updated := clonePost(*p)
		return &updated, nil
	}
	return nil, apperrors.ErrPostNotFound
}

func (r *postRepo) AddComment(ctx context.Context, postID, userID int64, content string) (*models.Post, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		s.posts[i].Comments = append(s.posts[i].Comments, models.Comment{
			ID:        s.id(),
			User:      userID,
			Content:   strings.TrimSpace(content),
			CreatedAt: time.Now(),
		})
		updated := clonePost(s.posts[i])
		return &updated, nil
	}
	return nil, apperrors.ErrPostNotFound
}

func (r *postRepo) Count(ctx context.Context) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts), nil
}

func (r *postRepo) ListAll(ctx context.Context) ([]models.Post, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.posts))
	for i := range s.posts {
		out = append(out, clonePost(s.posts[i]))
	}
	return out, nil
}
