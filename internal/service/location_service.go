package service

import (
	"context"
	"math"

	"taraweeh/internal/models"
	"taraweeh/internal/repository"
)

// FeaturedCount is the size of the homepage preview.
const FeaturedCount = 3

// Origin is a caller-supplied point used to compute query-time distances.
type Origin struct {
	Latitude  float64
	Longitude float64
}

// LocationService serves the public directory and admin location management.
type LocationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo repository.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

// Search filters listings by name substring and locality (suburb or state).
// When an origin is supplied, each listing with coordinates gets its distance
// filled in; distances are derived per request and never persisted.
func (s *LocationService) Search(ctx context.Context, query, locality string, origin *Origin) ([]*models.Location, error) {
	locations, err := s.locationRepo.Search(ctx, query, locality)
	if err != nil {
		return nil, err
	}
	if origin != nil {
		fillDistances(locations, origin)
	}
	return locations, nil
}

// Featured returns the bounded homepage preview.
func (s *LocationService) Featured(ctx context.Context) ([]*models.Location, error) {
	return s.locationRepo.Featured(ctx, FeaturedCount)
}

// Get returns a single listing by id.
func (s *LocationService) Get(ctx context.Context, id uint) (*models.Location, error) {
	return s.locationRepo.GetByID(ctx, id)
}

// Create publishes a listing directly, bypassing the review queue. Admin only.
func (s *LocationService) Create(ctx context.Context, location *models.Location) error {
	if location.Name == "" || location.Address == "" || location.Suburb == "" || location.State == "" {
		return models.NewValidationError("name, address, suburb and state are required")
	}
	if location.Rakaat <= 0 {
		return models.NewValidationError("rakaat must be a positive number")
	}
	return s.locationRepo.Create(ctx, location)
}

// Update overwrites a listing. Admin only.
func (s *LocationService) Update(ctx context.Context, location *models.Location) error {
	return s.locationRepo.Update(ctx, location)
}

// Delete removes a listing. Admin only.
func (s *LocationService) Delete(ctx context.Context, id uint) error {
	return s.locationRepo.Delete(ctx, id)
}

func fillDistances(locations []*models.Location, origin *Origin) {
	for _, loc := range locations {
		if loc.Latitude == nil || loc.Longitude == nil {
			continue
		}
		d := haversineKM(origin.Latitude, origin.Longitude, *loc.Latitude, *loc.Longitude)
		loc.Distance = &d
	}
}

// haversineKM returns the great-circle distance between two points in kilometres.
func haversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKM = 6371.0

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}
