// Package service contains the business logic for the spot map API.
// Services validate inputs and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/leggiero/spotmap/internal/domain"
	"github.com/leggiero/spotmap/internal/repo"
	"github.com/leggiero/spotmap/internal/validate"
)

// LocationService implements business logic for Location operations.
type LocationService struct {
	repo repo.LocationRepo
}

// NewLocationService constructs a LocationService backed by the provided repo.
func NewLocationService(r repo.LocationRepo) *LocationService {
	return &LocationService{repo: r}
}

// Create validates and persists a new location.
// Returns a *domain.ValidationError (which matches domain.ErrValidation) for
// the first missing required field, checked in the order name, lat, lng.
func (s *LocationService) Create(ctx context.Context, in domain.LocationInput) (domain.Location, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Location{}, fmt.Errorf("service.LocationService.Create: %w", err)
	}
	result, err := s.repo.Create(ctx, in)
	if err != nil {
		return domain.Location{}, fmt.Errorf("service.LocationService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single location.
// Returns domain.ErrNotFound if no location with that id exists.
func (s *LocationService) GetByID(ctx context.Context, id int64) (domain.Location, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Location{}, fmt.Errorf("service.LocationService.GetByID: %w", err)
	}
	return result, nil
}

// List returns every location.
// Always returns a non-nil slice so callers can safely range over or encode it.
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.LocationService.List: %w", err)
	}
	if locations == nil {
		return []domain.Location{}, nil
	}
	return locations, nil
}
