package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"microblog/internal/apierrors"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleError writes the HTTP status and body for a service error.
// Unexpected errors become an opaque 500.
func handleError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewErrInternalServerError()
	}

	c.AbortWithStatusJSON(apiErr.HTTPCode, errorResponse{Error: apiErr.Message})
}
