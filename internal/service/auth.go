package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"microblog/internal/apierrors"
	"microblog/internal/logger"
	"microblog/internal/model"
)

// Auth registers and authenticates users against the user store. It issues
// plain identity records; there are no session tokens.
type Auth struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewAuth(userStore model.UserStore, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		logger:    logger,
	}
}

// Register creates a user with a salted bcrypt digest of the password and
// returns the identity record with the newly assigned id. The existence
// lookup is only a fast-path rejection; the unique constraint on email is
// what actually closes the race between concurrent signups.
func (a *Auth) Register(ctx context.Context, name, email, password string) (model.Identity, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", email)
		return model.Identity{}, apierrors.NewErrEmailIsTaken()
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if errors.Is(err, model.ErrEmailTaken) {
		// lost the race against a concurrent signup with the same email
		return model.Identity{}, apierrors.NewErrEmailIsTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", email,
		"user_id", user.ID)

	return user.Identity(), nil
}

// Authenticate verifies the password against the stored digest and returns
// the identity record. Unknown email and wrong password are distinct
// failures, matching the API contract. No state is mutated.
func (a *Auth) Authenticate(ctx context.Context, email, password string) (model.Identity, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Identity{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: password verification failed",
			"email", email)
		return model.Identity{}, apierrors.NewErrIncorrectPassword()
	}

	a.logger.Info("Auth service: user authenticated",
		"email", email,
		"user_id", user.ID)

	return user.Identity(), nil
}
