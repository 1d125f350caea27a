package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "volair/internal/errors"
	"volair/internal/logger"
	"volair/internal/service"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{services: services}
}

// writeError translates a domain error into the API's error body.
// Anything outside the taxonomy is logged and reported as a generic 500.
func writeError(c *gin.Context, err error) {
	var capErr *apperrors.CapacityError
	if errors.As(err, &capErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":          capErr.Error(),
			"availableSeats": capErr.AvailableSeats,
		})
		return
	}

	var status int
	switch {
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrEmailRegistered),
		errors.Is(err, apperrors.ErrBookingCancelled),
		errors.Is(err, apperrors.ErrAlreadyCancelled):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrFlightNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound):
		status = http.StatusNotFound
	default:
		logger.WithContext(c.Request.Context()).Error("Unexpected error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// writeForbidden reports an ownership failure with the operation's
// own message
func writeForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"error": message})
}
