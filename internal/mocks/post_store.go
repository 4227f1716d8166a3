package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"microblog/internal/model"
)

// PostStore is a testify mock for model.PostStore.
type PostStore struct {
	mock.Mock
}

func (m *PostStore) Insert(ctx context.Context, content string, authorID int64) (model.Post, error) {
	args := m.Called(ctx, content, authorID)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *PostStore) ListWithAuthors(ctx context.Context) ([]model.PostWithAuthor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PostWithAuthor), args.Error(1)
}

func (m *PostStore) DeleteOwned(ctx context.Context, postID, authorID int64) error {
	args := m.Called(ctx, postID, authorID)
	return args.Error(0)
}
