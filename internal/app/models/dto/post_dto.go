package dto

import "github.com/alumlink/alumlink/internal/app/models"

// CreatePostRequest is the payload for creating a forum post.
type CreatePostRequest struct {
	Title    string              `json:"title"`
	Content  string              `json:"content" binding:"required"`
	Category models.PostCategory `json:"category" binding:"omitempty,oneof=job advice event general" example:"general"`
}

// CommentRequest is the payload for commenting on a post.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostFilter carries the list query parameters for posts.
type PostFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// LikeResponse is returned by the like toggle.
type LikeResponse struct {
	Success bool         `json:"success"`
	Likes   int          `json:"likes"`
	Post    *models.Post `json:"post"`
}

// CommentResponse is returned after appending a comment.
type CommentResponse struct {
	Success bool         `json:"success"`
	Post    *models.Post `json:"post"`
}
