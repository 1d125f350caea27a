package repository

import (
	"sync"

	"volair/internal/models"
)

// Store is the single in-memory home of all application state: the
// account list, the flight catalog and the booking ledger, plus their
// monotonically increasing id counters. It is constructed once at
// process start and shared by every repository.
//
// One RWMutex guards everything. Ids start at 1 and are never reused
// or decremented, even across cancellations.
type Store struct {
	mu sync.RWMutex

	users    []*models.User
	flights  []*models.Flight
	bookings []*models.Booking

	userSeq    int64
	bookingSeq int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// AddFlight inserts a flight offer into the catalog. Used at startup
// to seed the deployment's catalog; flights are never added afterwards.
func (s *Store) AddFlight(f models.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flight := f
	s.flights = append(s.flights, &flight)
}

func (s *Store) nextUserID() int64 {
	s.userSeq++
	return s.userSeq
}

func (s *Store) nextBookingID() int64 {
	s.bookingSeq++
	return s.bookingSeq
}
