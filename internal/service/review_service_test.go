package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taraweeh/internal/models"
	"taraweeh/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReviewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open sqlite")

	require.NoError(t, db.AutoMigrate(&models.Submission{}, &models.Location{}), "migrate sqlite")
	return db
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(db, repository.NewSubmissionRepository(db))
}

func pendingSubmission(t *testing.T, db *gorm.DB) *models.Submission {
	t.Helper()
	parking := models.ParkingTypeDedicated
	sub := &models.Submission{
		MosqueName:        "Test Mosque",
		Address:           "1 Test St",
		Suburb:            "Testville",
		State:             "VIC",
		Time:              "8:00 PM",
		Rakaat:            20,
		HasWomensArea:     true,
		HasWuduFacilities: true,
		HasParking:        true,
		ParkingType:       &parking,
		SubmitterName:     "A",
		SubmitterEmail:    "a@example.com",
		Status:            models.SubmissionStatusPending,
	}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

func TestApprovePublishesLocation(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	approved, err := svc.Approve(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusApproved, approved.Status)

	var reloaded models.Submission
	require.NoError(t, db.First(&reloaded, sub.ID).Error)
	assert.Equal(t, models.SubmissionStatusApproved, reloaded.Status)

	var locations []models.Location
	require.NoError(t, db.Find(&locations).Error)
	require.Len(t, locations, 1)

	loc := locations[0]
	assert.Equal(t, sub.MosqueName, loc.Name)
	assert.Equal(t, sub.Address, loc.Address)
	assert.Equal(t, sub.Suburb, loc.Suburb)
	assert.Equal(t, sub.State, loc.State)
	assert.Equal(t, sub.Time, loc.Time)
	assert.Equal(t, sub.Rakaat, loc.Rakaat)
	assert.Equal(t, sub.HasWomensArea, loc.HasWomensArea)
	assert.Equal(t, sub.HasWuduFacilities, loc.HasWuduFacilities)
	assert.Equal(t, sub.HasParking, loc.HasParking)
	require.NotNil(t, loc.ParkingType)
	assert.Equal(t, models.ParkingTypeDedicated, *loc.ParkingType)
}

func TestApproveRejectsNonPendingSubmission(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	_, err := svc.Approve(context.Background(), sub.ID)
	require.NoError(t, err)

	// A second approval must not create a duplicate listing.
	_, err = svc.Approve(context.Background(), sub.ID)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Location{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Same for rejected submissions.
	rejected := pendingSubmission(t, db)
	require.NoError(t, svc.Reject(context.Background(), rejected.ID))
	_, err = svc.Approve(context.Background(), rejected.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.Code)
}

func TestApproveMissingSubmission(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)

	_, err := svc.Approve(context.Background(), 999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestApproveRollsBackWhenLocationInsertFails(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	// Make the second write of the transaction fail deterministically.
	require.NoError(t, db.Migrator().DropTable(&models.Location{}))

	_, err := svc.Approve(context.Background(), sub.ID)
	require.Error(t, err)

	var reloaded models.Submission
	require.NoError(t, db.First(&reloaded, sub.ID).Error)
	assert.Equal(t, models.SubmissionStatusPending, reloaded.Status,
		"status change must roll back with the failed location insert")
}

func TestRejectIsIdempotent(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	require.NoError(t, svc.Reject(context.Background(), sub.ID))
	require.NoError(t, svc.Reject(context.Background(), sub.ID))

	var reloaded models.Submission
	require.NoError(t, db.First(&reloaded, sub.ID).Error)
	assert.Equal(t, models.SubmissionStatusRejected, reloaded.Status)

	var count int64
	require.NoError(t, db.Model(&models.Location{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "reject must never create a location")
}

func TestRejectMissingSubmission(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)

	err := svc.Reject(context.Background(), 999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUpdateMergesOnlyPresentFields(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	name := "New Name"
	err := svc.Update(context.Background(), sub.ID, SubmissionPatch{MosqueName: &name})
	require.NoError(t, err)

	var reloaded models.Submission
	require.NoError(t, db.First(&reloaded, sub.ID).Error)
	assert.Equal(t, "New Name", reloaded.MosqueName)
	assert.Equal(t, sub.Address, reloaded.Address)
	assert.Equal(t, sub.Suburb, reloaded.Suburb)
	assert.Equal(t, sub.Rakaat, reloaded.Rakaat)
	assert.Equal(t, models.SubmissionStatusPending, reloaded.Status)
}

func TestUpdateOverwritesWithFalsyValues(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	hasParking := false
	info := ""
	err := svc.Update(context.Background(), sub.ID, SubmissionPatch{
		HasParking:     &hasParking,
		AdditionalInfo: &info,
	})
	require.NoError(t, err)

	var reloaded models.Submission
	require.NoError(t, db.First(&reloaded, sub.ID).Error)
	assert.False(t, reloaded.HasParking, "present false must overwrite")
	assert.Empty(t, reloaded.AdditionalInfo, "present empty string must overwrite")
}

func TestUpdateClearsParkingTypeWithEmptyString(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)
	require.NotNil(t, sub.ParkingType)

	cleared := models.ParkingType("")
	err := svc.Update(context.Background(), sub.ID, SubmissionPatch{
		ParkingType: &cleared,
	})
	require.NoError(t, err)

	var reloaded models.Submission
	require.NoError(t, db.First(&reloaded, sub.ID).Error)
	assert.Nil(t, reloaded.ParkingType, "empty parking type must clear to NULL")

	street := models.ParkingTypeStreet
	require.NoError(t, svc.Update(context.Background(), sub.ID, SubmissionPatch{
		ParkingType: &street,
	}))
	require.NoError(t, db.First(&reloaded, sub.ID).Error)
	require.NotNil(t, reloaded.ParkingType)
	assert.Equal(t, models.ParkingTypeStreet, *reloaded.ParkingType)
}

func TestUpdateDoesNotPropagateToLocation(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	_, err := svc.Approve(context.Background(), sub.ID)
	require.NoError(t, err)

	name := "Renamed Mosque"
	require.NoError(t, svc.Update(context.Background(), sub.ID, SubmissionPatch{MosqueName: &name}))

	// The published location stays a frozen snapshot.
	var loc models.Location
	require.NoError(t, db.First(&loc).Error)
	assert.Equal(t, "Test Mosque", loc.Name)
}

func TestRemoveKeepsPublishedLocation(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	_, err := svc.Approve(context.Background(), sub.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), sub.ID))

	err = db.First(&models.Submission{}, sub.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var count int64
	require.NoError(t, db.Model(&models.Location{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "deleting a submission must not cascade to its location")
}

func TestListNewestFirst(t *testing.T) {
	t.Parallel()

	db := setupReviewTestDB(t)
	svc := newReviewService(db)

	older := pendingSubmission(t, db)
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	newer := pendingSubmission(t, db)

	submissions, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.Equal(t, newer.ID, submissions[0].ID)
	assert.Equal(t, older.ID, submissions[1].ID)
}
