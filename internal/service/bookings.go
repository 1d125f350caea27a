package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "volair/internal/errors"
	"volair/internal/logger"
	"volair/internal/messaging"
	"volair/internal/models"
	"volair/internal/repository"
)

// BookingService is the booking ledger. It owns every booking mutation
// and is the only writer of flight seat counters, so the invariant
//
//	availableSeats + sum(passengers of non-cancelled bookings) == capacity
//
// holds for each flight at all times: every seat debit is
// capacity-checked before it commits, and cancel restores exactly what
// create consumed.
type BookingService struct {
	bookings   *repository.BookingRepository
	flights    *repository.FlightRepository
	natsClient *messaging.NATSClient

	// mu serializes create/modify/cancel globally. The store is a
	// single in-process structure with no other writer, so one lock is
	// enough to rule out lost updates between the capacity check and
	// the seat adjustment.
	mu sync.Mutex
}

func NewBookingService(bookings *repository.BookingRepository, flights *repository.FlightRepository, natsClient *messaging.NATSClient) *BookingService {
	return &BookingService{
		bookings:   bookings,
		flights:    flights,
		natsClient: natsClient,
	}
}

// Create reserves seats on a flight for the caller
func (s *BookingService) Create(ctx context.Context, userID int64, req *models.CreateBookingRequest) (*models.BookingWithFlight, error) {
	if req.FlightID == nil || *req.FlightID == 0 || req.Passengers == nil || *req.Passengers == 0 {
		return nil, apperrors.Validation("flightId and passengers are required")
	}
	passengers := *req.Passengers
	if passengers < 1 || passengers > 9 {
		return nil, apperrors.Validation("the number of passengers must be between 1 and 9")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.flights.GetByID(ctx, *req.FlightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	if flight == nil {
		return nil, apperrors.ErrFlightNotFound
	}

	if flight.AvailableSeats < passengers {
		return nil, &apperrors.CapacityError{AvailableSeats: flight.AvailableSeats}
	}

	booking := &models.Booking{
		UserID:     userID,
		FlightID:   flight.ID,
		Passengers: passengers,
		TotalPrice: flight.Price * float64(passengers),
		Status:     models.BookingStatusConfirmed,
		CreatedAt:  time.Now(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	updated, err := s.flights.AdjustSeats(ctx, flight.ID, -passengers)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust seats: %w", err)
	}

	event := models.BookingCreatedEvent{
		BookingID:  booking.ID,
		FlightID:   booking.FlightID,
		UserID:     booking.UserID,
		Passengers: booking.Passengers,
		TotalPrice: booking.TotalPrice,
		Timestamp:  time.Now(),
	}
	if err := s.natsClient.Publish(models.EventBookingCreated, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish booking created event",
			"error", err,
			"booking_id", booking.ID)
	}

	return &models.BookingWithFlight{Booking: *booking, Flight: updated}, nil
}

// Modify changes the passenger count of a booking the caller owns.
// The delta math keeps seats consumed by this booking equal to its
// passenger count before and after; shrinking the booking gives seats
// back to the flight.
func (s *BookingService) Modify(ctx context.Context, userID, bookingID int64, req *models.UpdateBookingRequest) (*models.BookingWithFlight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, apperrors.ErrBookingCancelled
	}

	flight, err := s.flights.GetByID(ctx, booking.FlightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	if req.Passengers != nil {
		newPassengers := *req.Passengers
		if newPassengers < 1 || newPassengers > 9 {
			return nil, apperrors.Validation("the number of passengers must be between 1 and 9")
		}

		oldPassengers := booking.Passengers
		seatsDelta := newPassengers - oldPassengers
		if seatsDelta > 0 && flight.AvailableSeats < seatsDelta {
			// The caller already holds oldPassengers seats, so the true
			// ceiling for this booking is available + held.
			return nil, &apperrors.CapacityError{AvailableSeats: flight.AvailableSeats + oldPassengers}
		}

		flight, err = s.flights.AdjustSeats(ctx, flight.ID, -seatsDelta)
		if err != nil {
			return nil, fmt.Errorf("failed to adjust seats: %w", err)
		}

		booking.Passengers = newPassengers
		booking.TotalPrice = flight.Price * float64(newPassengers)
		if err := s.bookings.Update(ctx, booking); err != nil {
			return nil, fmt.Errorf("failed to update booking: %w", err)
		}

		event := models.BookingModifiedEvent{
			BookingID:     booking.ID,
			FlightID:      booking.FlightID,
			UserID:        booking.UserID,
			OldPassengers: oldPassengers,
			NewPassengers: newPassengers,
			TotalPrice:    booking.TotalPrice,
			Timestamp:     time.Now(),
		}
		if err := s.natsClient.Publish(models.EventBookingModified, event); err != nil {
			logger.WithContext(ctx).Error("Failed to publish booking modified event",
				"error", err,
				"booking_id", booking.ID)
		}
	}

	return &models.BookingWithFlight{Booking: *booking, Flight: flight}, nil
}

// Cancel releases a booking's seats back to its flight and marks the
// booking cancelled. Cancelled is terminal; the record is kept.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, apperrors.ErrAlreadyCancelled
	}

	if _, err := s.flights.AdjustSeats(ctx, booking.FlightID, booking.Passengers); err != nil {
		return nil, fmt.Errorf("failed to release seats: %w", err)
	}

	booking.Status = models.BookingStatusCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	event := models.BookingCancelledEvent{
		BookingID:     booking.ID,
		FlightID:      booking.FlightID,
		UserID:        booking.UserID,
		SeatsReleased: booking.Passengers,
		Timestamp:     time.Now(),
	}
	if err := s.natsClient.Publish(models.EventBookingCancelled, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish booking cancelled event",
			"error", err,
			"booking_id", booking.ID)
	}

	return booking, nil
}

// ListForUser returns all of the caller's bookings, any status, each
// joined with its flight snapshot
func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]models.BookingWithFlight, error) {
	bookings, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	result := make([]models.BookingWithFlight, 0, len(bookings))
	for _, b := range bookings {
		flight, err := s.flights.GetByID(ctx, b.FlightID)
		if err != nil {
			return nil, fmt.Errorf("failed to get flight: %w", err)
		}
		result = append(result, models.BookingWithFlight{Booking: b, Flight: flight})
	}
	return result, nil
}

// GetByID returns a single booking with its flight snapshot, enforcing
// the same ownership rule as modify and cancel
func (s *BookingService) GetByID(ctx context.Context, userID, bookingID int64) (*models.BookingWithFlight, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	flight, err := s.flights.GetByID(ctx, booking.FlightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return &models.BookingWithFlight{Booking: *booking, Flight: flight}, nil
}
