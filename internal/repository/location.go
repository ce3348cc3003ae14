// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"taraweeh/internal/cache"
	"taraweeh/internal/models"

	"gorm.io/gorm"
)

// LocationRepository defines the interface for published location data operations
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uint) (*models.Location, error)
	Search(ctx context.Context, query, locality string) ([]*models.Location, error)
	Featured(ctx context.Context, limit int) ([]*models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id uint) error
}

// locationRepository implements LocationRepository
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *models.Location) error {
	err := r.db.WithContext(ctx).Create(location).Error
	if err == nil {
		cache.InvalidateLocations(ctx)
	}
	return err
}

func (r *locationRepository) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	err := cache.Aside(ctx, cache.LocationKey(id), &location, cache.LocationTTL, func() error {
		return r.db.WithContext(ctx).First(&location, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// Search filters by case-insensitive substring on name and by locality
// against suburb OR state; a match on either is sufficient. Empty inputs
// impose no filter. Only the unfiltered read is cached.
func (r *locationRepository) Search(ctx context.Context, query, locality string) ([]*models.Location, error) {
	var locations []*models.Location

	if query == "" && locality == "" {
		err := cache.Aside(ctx, cache.LocationsListKey, &locations, cache.ListTTL, func() error {
			return r.db.WithContext(ctx).Order("id ASC").Find(&locations).Error
		})
		return locations, err
	}

	tx := r.db.WithContext(ctx)
	if query != "" {
		tx = tx.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}
	if locality != "" {
		pattern := "%" + locality + "%"
		tx = tx.Where("LOWER(suburb) LIKE LOWER(?) OR LOWER(state) LIKE LOWER(?)", pattern, pattern)
	}
	err := tx.Order("id ASC").Find(&locations).Error
	return locations, err
}

// Featured returns the bounded homepage preview. Selection order is the
// store's natural order; no ranking criterion is defined.
func (r *locationRepository) Featured(ctx context.Context, limit int) ([]*models.Location, error) {
	var locations []*models.Location
	err := cache.Aside(ctx, cache.FeaturedKey, &locations, cache.ListTTL, func() error {
		return r.db.WithContext(ctx).Order("id ASC").Limit(limit).Find(&locations).Error
	})
	return locations, err
}

func (r *locationRepository) Update(ctx context.Context, location *models.Location) error {
	err := r.db.WithContext(ctx).Save(location).Error
	if err == nil {
		cache.InvalidateLocations(ctx, location.ID)
	}
	return err
}

func (r *locationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Location{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateLocations(ctx, id)
	return nil
}
