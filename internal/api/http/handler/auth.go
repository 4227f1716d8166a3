package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/internal/apierrors"
	"microblog/internal/logger"
	"microblog/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (model.Identity, error)
	Authenticate(ctx context.Context, email, password string) (model.Identity, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a user and returns its identity record.
func (h *Auth) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierrors.NewErrMissingFields("name, email or password"))
		return
	}

	h.logger.Debug("Auth handler: processing signup request",
		"email", req.Email)

	identity, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: signup completed",
		"email", req.Email,
		"user_id", identity.ID)

	c.JSON(http.StatusOK, identity)
}

// Login authenticates a user and returns its identity record.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierrors.NewErrMissingFields("email or password"))
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	identity, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"email", req.Email,
		"user_id", identity.ID)

	c.JSON(http.StatusOK, identity)
}
