package service

import (
	"context"
	"errors"
	"fmt"

	"microblog/internal/apierrors"
	"microblog/internal/logger"
	"microblog/internal/model"
)

// Post orchestrates create, list and delete against the post store.
type Post struct {
	postStore model.PostStore
	userStore model.UserStore
	logger    *logger.Logger
}

func NewPost(postStore model.PostStore, userStore model.UserStore, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		userStore: userStore,
		logger:    logger,
	}
}

// List returns all posts with author fields, newest first. An empty feed
// is an empty slice, never an error.
func (s *Post) List(ctx context.Context) ([]model.PostWithAuthor, error) {
	posts, err := s.postStore.ListWithAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	s.logger.Debug("Post service: listed posts",
		"count", len(posts))

	return posts, nil
}

// Create inserts a post for an existing author. Ownership cannot be
// established against a phantom author, so an unknown id is NotFound.
func (s *Post) Create(ctx context.Context, content string, authorID int64) (model.Post, error) {
	s.logger.Debug("Post service: creating post",
		"author", authorID)

	_, err := s.userStore.GetByID(ctx, authorID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Post{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	post, err := s.postStore.Insert(ctx, content, authorID)
	if err != nil {
		s.logger.Error("Post service: failed to insert post",
			"author", authorID,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	s.logger.Info("Post service: post created",
		"post_id", post.ID,
		"author", authorID)

	return post, nil
}

// Delete removes the post iff it exists and belongs to the requester.
// The store performs both checks in one statement, and a miss on either
// surfaces as the same not-found error.
func (s *Post) Delete(ctx context.Context, postID, requesterID int64) error {
	s.logger.Debug("Post service: deleting post",
		"post_id", postID,
		"requester", requesterID)

	err := s.postStore.DeleteOwned(ctx, postID, requesterID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrPostNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("Post service: post deleted",
		"post_id", postID,
		"requester", requesterID)

	return nil
}
