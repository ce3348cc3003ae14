package service

import (
	"context"
	"errors"

	"taraweeh/internal/cache"
	"taraweeh/internal/models"
	"taraweeh/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewService owns every submission status transition and the projection of
// approved submissions into published locations. It is the only place that
// writes to both collections in one operation.
type ReviewService struct {
	db             *gorm.DB
	submissionRepo repository.SubmissionRepository
}

// SubmissionPatch is a partial edit of a submission. A nil field means
// "leave untouched"; a non-nil field always overwrites, including with an
// empty or false value. An empty ParkingType clears the stored value to
// NULL. Status is deliberately not patchable here.
type SubmissionPatch struct {
	MosqueName        *string             `json:"mosque_name"`
	Address           *string             `json:"address"`
	Suburb            *string             `json:"suburb"`
	State             *string             `json:"state"`
	Time              *string             `json:"time"`
	Rakaat            *int                `json:"rakaat"`
	HasWomensArea     *bool               `json:"has_womens_area"`
	HasWuduFacilities *bool               `json:"has_wudu_facilities"`
	HasParking        *bool               `json:"has_parking"`
	ParkingType       *models.ParkingType `json:"parking_type"`
	AdditionalInfo    *string             `json:"additional_info"`
}

// NewReviewService creates a new review service
func NewReviewService(db *gorm.DB, submissionRepo repository.SubmissionRepository) *ReviewService {
	return &ReviewService{
		db:             db,
		submissionRepo: submissionRepo,
	}
}

// Approve transitions a pending submission to approved and publishes it as a
// new location. Both writes run in one transaction: a failed location insert
// rolls the status change back, so "approved with no listing" is unreachable.
// Approving a submission that is no longer pending fails with INVALID_STATE
// rather than creating a duplicate listing.
func (s *ReviewService) Approve(ctx context.Context, id uint) (*models.Submission, error) {
	var approved models.Submission

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&approved, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Submission", id)
			}
			return err
		}

		if approved.Status != models.SubmissionStatusPending {
			return models.NewInvalidStateError("submission is not pending")
		}

		approved.Status = models.SubmissionStatusApproved
		if err := tx.Save(&approved).Error; err != nil {
			return err
		}

		location := approved.ToLocation()
		if err := tx.Create(&location).Error; err != nil {
			return err
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	cache.InvalidateSubmissions(ctx)
	cache.InvalidateLocations(ctx)

	return &approved, nil
}

// Reject marks a submission rejected. No location is written. Rejecting an
// already-rejected submission succeeds as a no-op mutation.
func (s *ReviewService) Reject(ctx context.Context, id uint) error {
	err := s.submissionRepo.UpdateFields(ctx, id, map[string]any{
		"status": models.SubmissionStatusRejected,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Submission", id)
	}
	return err
}

// Update merges the patch's present fields into the stored submission.
// Editing never alters status and never touches the locations collection,
// even for submissions that were already approved: the published location is
// a frozen snapshot.
func (s *ReviewService) Update(ctx context.Context, id uint, patch SubmissionPatch) error {
	fields := map[string]any{}
	if patch.MosqueName != nil {
		fields["mosque_name"] = *patch.MosqueName
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.Suburb != nil {
		fields["suburb"] = *patch.Suburb
	}
	if patch.State != nil {
		fields["state"] = *patch.State
	}
	if patch.Time != nil {
		fields["time"] = *patch.Time
	}
	if patch.Rakaat != nil {
		if *patch.Rakaat <= 0 {
			return models.NewValidationError("rakaat must be a positive number")
		}
		fields["rakaat"] = *patch.Rakaat
	}
	if patch.HasWomensArea != nil {
		fields["has_womens_area"] = *patch.HasWomensArea
	}
	if patch.HasWuduFacilities != nil {
		fields["has_wudu_facilities"] = *patch.HasWuduFacilities
	}
	if patch.HasParking != nil {
		fields["has_parking"] = *patch.HasParking
	}
	if patch.ParkingType != nil {
		if *patch.ParkingType == "" {
			// Empty string clears the stored parking type.
			fields["parking_type"] = nil
		} else {
			fields["parking_type"] = *patch.ParkingType
		}
	}
	if patch.AdditionalInfo != nil {
		fields["additional_info"] = *patch.AdditionalInfo
	}
	if len(fields) == 0 {
		return nil
	}

	err := s.submissionRepo.UpdateFields(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Submission", id)
	}
	return err
}

// Remove permanently deletes a submission. A location already published from
// it is left untouched.
func (s *ReviewService) Remove(ctx context.Context, id uint) error {
	err := s.submissionRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Submission", id)
	}
	return err
}

// List returns the admin review queue, newest first.
func (s *ReviewService) List(ctx context.Context) ([]*models.Submission, error) {
	return s.submissionRepo.List(ctx)
}
