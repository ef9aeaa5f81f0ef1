package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tantsuball/internal/errors"
	"tantsuball/internal/service"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{services: services}
}

// respondError maps domain errors onto HTTP status codes. Every
// domain error is recoverable and carries a human-readable message;
// anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrEmailInUse):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrSelectionNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDanceNotInEvent),
		errors.Is(err, apperrors.ErrPartnerUnavailable),
		errors.Is(err, apperrors.ErrInvalidStep):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// userID returns the authenticated user id set by the session
// middleware.
func userID(c *gin.Context) string {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
