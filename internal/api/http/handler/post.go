package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/internal/apierrors"
	"microblog/internal/logger"
	"microblog/internal/model"
)

// PostService defines business operations for posts.
type PostService interface {
	List(ctx context.Context) ([]model.PostWithAuthor, error)
	Create(ctx context.Context, content string, authorID int64) (model.Post, error)
	Delete(ctx context.Context, postID, requesterID int64) error
}

// Post handles HTTP endpoints for posts.
type Post struct {
	postService PostService
	logger      *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, logger *logger.Logger) *Post {
	return &Post{
		postService: postService,
		logger:      logger,
	}
}

type createPostRequest struct {
	Value  string `json:"value" binding:"required"`
	UserID int64  `json:"userId" binding:"required"`
}

type deletePostRequest struct {
	PostID int64 `json:"postId" binding:"required"`
	UserID int64 `json:"userId" binding:"required"`
}

type deletePostResponse struct {
	Success bool `json:"success"`
}

// List returns every post with author fields, newest first.
func (h *Post) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Post handler: list failed",
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Create inserts a post for the given author and returns the created row.
func (h *Post) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierrors.NewErrMissingFields("content or userId"))
		return
	}

	h.logger.Debug("Post handler: processing create request",
		"author", req.UserID)

	post, err := h.postService.Create(c.Request.Context(), req.Value, req.UserID)
	if err != nil {
		h.logger.Error("Post handler: create failed",
			"author", req.UserID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Post handler: post created",
		"post_id", post.ID,
		"author", post.Author)

	c.JSON(http.StatusOK, post)
}

// Delete removes a post owned by the requester.
func (h *Post) Delete(c *gin.Context) {
	var req deletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierrors.NewErrMissingFields("postId or userId"))
		return
	}

	h.logger.Debug("Post handler: processing delete request",
		"post_id", req.PostID,
		"requester", req.UserID)

	if err := h.postService.Delete(c.Request.Context(), req.PostID, req.UserID); err != nil {
		h.logger.Error("Post handler: delete failed",
			"post_id", req.PostID,
			"requester", req.UserID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Post handler: post deleted",
		"post_id", req.PostID,
		"requester", req.UserID)

	c.JSON(http.StatusOK, deletePostResponse{Success: true})
}
