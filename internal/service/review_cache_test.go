package service

import (
	"context"
	"testing"

	"taraweeh/internal/cache"
	"taraweeh/internal/models"
	"taraweeh/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The cache client is shared package state, so these tests do not run in
// parallel and restore the cache-less default before finishing.
func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(rdb)
	t.Cleanup(func() {
		cache.SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func warmCaches(t *testing.T, db *gorm.DB, mr *miniredis.Miniredis) {
	t.Helper()
	ctx := context.Background()
	locationRepo := repository.NewLocationRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	_, err := locationRepo.Search(ctx, "", "")
	require.NoError(t, err)
	_, err = locationRepo.Featured(ctx, 3)
	require.NoError(t, err)
	_, err = submissionRepo.List(ctx)
	require.NoError(t, err)

	require.True(t, mr.Exists(cache.LocationsListKey))
	require.True(t, mr.Exists(cache.FeaturedKey))
	require.True(t, mr.Exists(cache.SubmissionsListKey))
}

func TestApproveInvalidatesCachedViews(t *testing.T) {
	mr := withMiniredis(t)
	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	warmCaches(t, db, mr)

	_, err := svc.Approve(context.Background(), sub.ID)
	require.NoError(t, err)

	assert.False(t, mr.Exists(cache.SubmissionsListKey), "approve must drop the review queue")
	assert.False(t, mr.Exists(cache.LocationsListKey), "approve must drop the browse list")
	assert.False(t, mr.Exists(cache.FeaturedKey), "approve must drop the featured list")
}

func TestApprovedListingVisibleAfterCachedBrowse(t *testing.T) {
	mr := withMiniredis(t)
	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)
	locationRepo := repository.NewLocationRepository(db)
	ctx := context.Background()

	// Cache the empty browse list, then prove it is served from Redis by
	// writing a row behind the repository's back.
	warmCaches(t, db, mr)
	require.NoError(t, db.Create(&models.Location{
		Name: "Backdoor Mosque", Address: "1 Side St", Suburb: "Testville",
		State: "VIC", Time: "8:00 PM", Rakaat: 8,
	}).Error)

	cached, err := locationRepo.Search(ctx, "", "")
	require.NoError(t, err)
	require.Empty(t, cached, "stale cached list must still be served")

	_, err = svc.Approve(ctx, sub.ID)
	require.NoError(t, err)

	fresh, err := locationRepo.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, fresh, 2, "post-approve read must come from the store")
}

func TestRejectInvalidatesReviewQueueOnly(t *testing.T) {
	mr := withMiniredis(t)
	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)

	warmCaches(t, db, mr)

	require.NoError(t, svc.Reject(context.Background(), sub.ID))

	assert.False(t, mr.Exists(cache.SubmissionsListKey))
	assert.True(t, mr.Exists(cache.LocationsListKey), "reject publishes nothing")
	assert.True(t, mr.Exists(cache.FeaturedKey))
}

func TestUpdateAndRemoveInvalidateReviewQueue(t *testing.T) {
	mr := withMiniredis(t)
	db := setupReviewTestDB(t)
	svc := newReviewService(db)
	sub := pendingSubmission(t, db)
	ctx := context.Background()

	warmCaches(t, db, mr)
	name := "Renamed Mosque"
	require.NoError(t, svc.Update(ctx, sub.ID, SubmissionPatch{MosqueName: &name}))
	assert.False(t, mr.Exists(cache.SubmissionsListKey))

	warmCaches(t, db, mr)
	require.NoError(t, svc.Remove(ctx, sub.ID))
	assert.False(t, mr.Exists(cache.SubmissionsListKey))
}
