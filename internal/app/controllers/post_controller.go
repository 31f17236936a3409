package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/services"
	"github.com/alumlink/alumlink/internal/middleware"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

// PostController handles the community forum
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{postService: postService}
}

// List returns one page of posts, newest first
func (c *PostController) List(ctx *gin.Context) {
	page, limit := helpers.ParseListParams(ctx)
	filter := dto.PostFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	resp, err := c.postService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "posts": resp.Posts, "pagination": resp.Pagination})
}

// Create adds a new forum post authored by the caller
func (c *PostController) Create(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.postService.Create(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "post": post})
}

// Like toggles the caller's like on a post
func (c *PostController) Like(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.postService.ToggleLike(ctx.Request.Context(), postID, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Comment appends a comment to a post
func (c *PostController) Comment(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.postService.Comment(ctx.Request.Context(), postID, middleware.UserID(ctx), req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Mine returns posts authored by the caller
func (c *PostController) Mine(ctx *gin.Context) {
	posts, err := c.postService.ListMine(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}
