package repository

import (
	"context"

	apperrors "volair/internal/errors"
	"volair/internal/models"
)

type BookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// Create assigns the next booking id and appends the record to the
// ledger. Booking ids are monotonic and never recycled.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.nextBookingID()
	stored := *booking
	s.bookings = append(s.bookings, &stored)
	return nil
}

// GetByID returns the booking with the given id, or nil
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			booking := *b
			return &booking, nil
		}
	}
	return nil, nil
}

// GetByUserID returns all of a user's bookings, any status, in ledger
// insertion order
func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			result = append(result, *b)
		}
	}
	return result, nil
}

// Update replaces the stored booking record by id
func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == booking.ID {
			stored := *booking
			s.bookings[i] = &stored
			return nil
		}
	}
	return apperrors.ErrBookingNotFound
}
