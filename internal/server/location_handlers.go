package server

import (
	"errors"
	"strconv"

	"taraweeh/internal/models"
	"taraweeh/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetLocations handles GET /api/locations.
// Query parameters: search (name substring), locality (suburb or state
// substring), lat/lng (optional origin for query-time distances).
func (s *Server) GetLocations(c *fiber.Ctx) error {
	query := c.Query("search")
	locality := c.Query("locality")

	var origin *service.Origin
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("lat and lng must be numbers"))
		}
		origin = &service.Origin{Latitude: lat, Longitude: lng}
	}

	locations, err := s.locationService.Search(c.UserContext(), query, locality, origin)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(locations)
}

// GetFeaturedLocations handles GET /api/locations/featured.
func (s *Server) GetFeaturedLocations(c *fiber.Ctx) error {
	locations, err := s.locationService.Featured(c.UserContext())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(locations)
}

// GetLocation handles GET /api/locations/:id.
func (s *Server) GetLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	location, err := s.locationService.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Location", id))
		}
		return respondAppError(c, err)
	}
	return c.JSON(location)
}

// CreateLocation handles POST /api/admin/locations. Direct publication
// without a submission, for listings the admins source themselves.
func (s *Server) CreateLocation(c *fiber.Ctx) error {
	var location models.Location
	if err := c.BodyParser(&location); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	location.ID = 0

	if err := s.locationService.Create(c.UserContext(), &location); err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// UpdateLocation handles PUT /api/admin/locations/:id.
func (s *Server) UpdateLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	existing, err := s.locationService.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Location", id))
		}
		return respondAppError(c, err)
	}

	var updated models.Location
	if err := c.BodyParser(&updated); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.locationService.Update(c.UserContext(), &updated); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(updated)
}

// DeleteLocation handles DELETE /api/admin/locations/:id.
func (s *Server) DeleteLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.locationService.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Location", id))
		}
		return respondAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
