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

// PostService handles the community forum.
type PostService interface {
	Create(ctx context.Context, authorID int64, req dto.CreatePostRequest) (*models.Post, error)
	List(ctx context.Context, filter dto.PostFilter) (*dto.PostListResponse, error)

	// ToggleLike flips the caller's membership in the like set and returns
	// the updated post.
	ToggleLike(ctx context.Context, postID, userID int64) (*dto.LikeResponse, error)

	Comment(ctx context.Context, postID, userID int64, content string) (*dto.CommentResponse, error)

	// ListMine returns posts authored by the user.
	ListMine(ctx context.Context, userID int64) ([]models.Post, error)
}

type postServiceImpl struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	logger   zerolog.Logger
}

// NewPostService creates a new post service instance
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, logger zerolog.Logger) PostService {
	return &postServiceImpl{postRepo: postRepo, userRepo: userRepo, logger: logger}
}

func (s *postServiceImpl) Create(ctx context.Context, authorID int64, req dto.CreatePostRequest) (*models.Post, error) {
	category := req.Category
	if category == "" {
		category = models.PostCategoryGeneral
	}

	post := &models.Post{
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		Category:  category,
		Author:    authorID,
		Likes:     []int64{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postId", post.ID).Int64("author", authorID).Msg("Post created")

	if user, err := s.userRepo.GetByID(ctx, authorID); err == nil {
		post.AuthorRef = &models.UserRef{ID: user.ID, Name: user.Name, Role: user.Role}
	}
	return post, nil
}

func (s *postServiceImpl) List(ctx context.Context, filter dto.PostFilter) (*dto.PostListResponse, error) {
	posts, total, err := s.postRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}

	s.attachAuthors(ctx, posts)

	return &dto.PostListResponse{
		Posts:      posts,
		Pagination: helpers.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *postServiceImpl) ToggleLike(ctx context.Context, postID, userID int64) (*dto.LikeResponse, error) {
	post, err := s.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeResponse{
		Success: true,
		Likes:   len(post.Likes),
		Post:    post,
	}, nil
}

func (s *postServiceImpl) Comment(ctx context.Context, postID, userID int64, content string) (*dto.CommentResponse, error) {
	post, err := s.postRepo.AddComment(ctx, postID, userID, content)
	if err != nil {
		return nil, err
	}

	return &dto.CommentResponse{
		Success: true,
		Post:    post,
	}, nil
}

func (s *postServiceImpl) ListMine(ctx context.Context, userID int64) ([]models.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (s *postServiceImpl) attachAuthors(ctx context.Context, posts []models.Post) {
	cache := map[int64]*models.UserRef{}
	for i := range posts {
		ref, ok := cache[posts[i].Author]
		if !ok {
			user, err := s.userRepo.GetByID(ctx, posts[i].Author)
			if err == nil {
				ref = &models.UserRef{ID: user.ID, Name: user.Name, Role: user.Role}
			}
			cache[posts[i].Author] = ref
		}
		posts[i].AuthorRef = ref
	}
}
