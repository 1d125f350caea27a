package repository

import (
	"context"
	"strings"

	apperrors "volair/internal/errors"
	"volair/internal/models"
)

// FlightFilter narrows a catalog listing. Absent fields impose no
// constraint; all present fields are AND-combined.
type FlightFilter struct {
	Origin      string // substring, case-insensitive
	Destination string // substring, case-insensitive
	Date        string // exact departure date
}

type FlightRepository struct {
	store *Store
}

func NewFlightRepository(store *Store) *FlightRepository {
	return &FlightRepository{store: store}
}

// List returns catalog flights matching the filter, in catalog order
func (r *FlightRepository) List(ctx context.Context, filter FlightFilter) ([]models.Flight, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		if filter.Origin != "" && !strings.Contains(strings.ToLower(f.Origin), strings.ToLower(filter.Origin)) {
			continue
		}
		if filter.Destination != "" && !strings.Contains(strings.ToLower(f.Destination), strings.ToLower(filter.Destination)) {
			continue
		}
		if filter.Date != "" && f.DepartureDate != filter.Date {
			continue
		}
		result = append(result, *f)
	}
	return result, nil
}

// GetByID returns the flight with the given id, or nil
func (r *FlightRepository) GetByID(ctx context.Context, id int64) (*models.Flight, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.flights {
		if f.ID == id {
			flight := *f
			return &flight, nil
		}
	}
	return nil, nil
}

// DistinctOrigins returns the unique origin cities across the catalog
func (r *FlightRepository) DistinctOrigins(ctx context.Context) ([]string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	origins := make([]string, 0)
	for _, f := range s.flights {
		if !seen[f.Origin] {
			seen[f.Origin] = true
			origins = append(origins, f.Origin)
		}
	}
	return origins, nil
}

// DistinctDestinations returns the unique destination cities across the catalog
func (r *FlightRepository) DistinctDestinations(ctx context.Context) ([]string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	destinations := make([]string, 0)
	for _, f := range s.flights {
		if !seen[f.Destination] {
			seen[f.Destination] = true
			destinations = append(destinations, f.Destination)
		}
	}
	return destinations, nil
}

// AdjustSeats applies availableSeats += delta and returns the updated
// flight. The repository performs no bounds checking: the booking
// service is the only caller and validates capacity before every debit.
func (r *FlightRepository) AdjustSeats(ctx context.Context, id int64, delta int) (*models.Flight, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.flights {
		if f.ID == id {
			f.AvailableSeats += delta
			flight := *f
			return &flight, nil
		}
	}
	return nil, apperrors.ErrFlightNotFound
}
