package service

import (
	"context"
	"strings"

	"taraweeh/internal/models"
	"taraweeh/internal/repository"
	"taraweeh/internal/validation"
)

// SubmissionService accepts community submissions from the public form.
type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
}

// SubmitInput mirrors the public submission form. Rakaat arrives as a string
// because the form offers fixed counts plus an "other" free entry.
type SubmitInput struct {
	MosqueName        string `json:"mosque_name"`
	Address           string `json:"address"`
	Suburb            string `json:"suburb"`
	State             string `json:"state"`
	Time              string `json:"time"`
	Rakaat            string `json:"rakaat"`
	HasWomensArea     bool   `json:"has_womens_area"`
	HasWuduFacilities bool   `json:"has_wudu_facilities"`
	HasParking        bool   `json:"has_parking"`
	ParkingType       string `json:"parking_type"`
	SubmitterName     string `json:"submitter_name"`
	SubmitterEmail    string `json:"submitter_email"`
	AdditionalInfo    string `json:"additional_info"`
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(submissionRepo repository.SubmissionRepository) *SubmissionService {
	return &SubmissionService{submissionRepo: submissionRepo}
}

// Submit validates the form input and stores a new submission. Every
// submission starts pending regardless of anything the caller supplies.
func (s *SubmissionService) Submit(ctx context.Context, in SubmitInput) (*models.Submission, error) {
	if err := validation.ValidateMosqueName(in.MosqueName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateAddress(in.Address); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateSuburb(in.Suburb); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateState(in.State); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateTime(in.Time); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	rakaat, err := validation.ValidateRakaat(in.Rakaat)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateSubmitterName(in.SubmitterName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.SubmitterEmail); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateParkingType(in.ParkingType); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	submission := &models.Submission{
		MosqueName:        strings.TrimSpace(in.MosqueName),
		Address:           strings.TrimSpace(in.Address),
		Suburb:            strings.TrimSpace(in.Suburb),
		State:             in.State,
		Time:              strings.TrimSpace(in.Time),
		Rakaat:            rakaat,
		HasWomensArea:     in.HasWomensArea,
		HasWuduFacilities: in.HasWuduFacilities,
		HasParking:        in.HasParking,
		SubmitterName:     strings.TrimSpace(in.SubmitterName),
		SubmitterEmail:    in.SubmitterEmail,
		AdditionalInfo:    strings.TrimSpace(in.AdditionalInfo),
		Status:            models.SubmissionStatusPending,
	}
	if in.ParkingType != "" {
		pt := models.ParkingType(in.ParkingType)
		submission.ParkingType = &pt
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}
