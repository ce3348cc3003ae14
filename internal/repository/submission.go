package repository

import (
	"context"

	"taraweeh/internal/cache"
	"taraweeh/internal/models"

	"gorm.io/gorm"
)

// SubmissionRepository defines the interface for submission data operations
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	GetByID(ctx context.Context, id uint) (*models.Submission, error)
	List(ctx context.Context) ([]*models.Submission, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// submissionRepository implements SubmissionRepository
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	err := r.db.WithContext(ctx).Create(submission).Error
	if err == nil {
		cache.InvalidateSubmissions(ctx)
	}
	return err
}

func (r *submissionRepository) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := r.db.WithContext(ctx).First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// List returns the full admin review queue, newest first.
func (r *submissionRepository) List(ctx context.Context) ([]*models.Submission, error) {
	var submissions []*models.Submission
	err := cache.Aside(ctx, cache.SubmissionsListKey, &submissions, cache.SubmissionsTTL, func() error {
		return r.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error
	})
	return submissions, err
}

func (r *submissionRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Submission{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateSubmissions(ctx)
	return nil
}

func (r *submissionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Submission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateSubmissions(ctx)
	return nil
}
