package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"microblog/internal/model"
)

// AuthService is a testify mock for the handler-facing auth service.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, name, email, password string) (model.Identity, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(model.Identity), args.Error(1)
}

func (m *AuthService) Authenticate(ctx context.Context, email, password string) (model.Identity, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.Identity), args.Error(1)
}

// PostService is a testify mock for the handler-facing post service.
type PostService struct {
	mock.Mock
}

func (m *PostService) List(ctx context.Context) ([]model.PostWithAuthor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PostWithAuthor), args.Error(1)
}

func (m *PostService) Create(ctx context.Context, content string, authorID int64) (model.Post, error) {
	args := m.Called(ctx, content, authorID)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *PostService) Delete(ctx context.Context, postID, requesterID int64) error {
	args := m.Called(ctx, postID, requesterID)
	return args.Error(0)
}
