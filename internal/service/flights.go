package service

import (
	"context"
	"fmt"

	apperrors "volair/internal/errors"
	"volair/internal/models"
	"volair/internal/repository"
)

type FlightService struct {
	flights *repository.FlightRepository
}

func NewFlightService(flights *repository.FlightRepository) *FlightService {
	return &FlightService{flights: flights}
}

// List returns catalog flights matching the filter
func (s *FlightService) List(ctx context.Context, filter repository.FlightFilter) ([]models.Flight, error) {
	flights, err := s.flights.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

// GetByID returns a single flight offer
func (s *FlightService) GetByID(ctx context.Context, id int64) (*models.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	if flight == nil {
		return nil, apperrors.ErrFlightNotFound
	}
	return flight, nil
}

// Origins returns the unique origin cities served by the catalog
func (s *FlightService) Origins(ctx context.Context) ([]string, error) {
	origins, err := s.flights.DistinctOrigins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list origins: %w", err)
	}
	return origins, nil
}

// Destinations returns the unique destination cities served by the catalog
func (s *FlightService) Destinations(ctx context.Context) ([]string, error) {
	destinations, err := s.flights.DistinctDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return destinations, nil
}
