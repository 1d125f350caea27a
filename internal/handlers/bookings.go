package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "volair/internal/errors"
	"volair/internal/middleware"
	"volair/internal/models"
)

// ListBookings - GET /api/bookings (authenticated)
func (h *Handlers) ListBookings(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	bookings, err := h.services.Bookings.ListForUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking - GET /api/bookings/:id (authenticated, owner only)
func (h *Handlers) GetBooking(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperrors.ErrBookingNotFound)
		return
	}

	booking, err := h.services.Bookings.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			writeForbidden(c, "you do not have permission to view this booking")
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CreateBooking - POST /api/bookings (authenticated)
func (h *Handlers) CreateBooking(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.BookingResponse{
		Message: "booking created successfully",
		Booking: booking,
	})
}

// UpdateBooking - PUT /api/bookings/:id (authenticated, owner only)
func (h *Handlers) UpdateBooking(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperrors.ErrBookingNotFound)
		return
	}

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.Modify(c.Request.Context(), userID, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			writeForbidden(c, "you do not have permission to modify this booking")
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Message: "booking modified successfully",
		Booking: booking,
	})
}

// CancelBooking - DELETE /api/bookings/:id (authenticated, owner only)
// The booking is marked cancelled and kept, never deleted.
func (h *Handlers) CancelBooking(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperrors.ErrBookingNotFound)
		return
	}

	booking, err := h.services.Bookings.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			writeForbidden(c, "you do not have permission to cancel this booking")
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CancelBookingResponse{
		Message: "booking cancelled successfully",
		Booking: booking,
	})
}
