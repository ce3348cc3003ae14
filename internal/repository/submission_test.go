package repository

import (
	"context"
	"testing"
	"time"

	"taraweeh/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSubmissionListOrdersNewestFirst(t *testing.T) {
	t.Parallel()

	db := setupRepoTestDB(t)
	repo := NewSubmissionRepository(db)

	base := time.Now().Add(-3 * time.Hour)
	names := []string{"First", "Second", "Third"}
	for i, name := range names {
		sub := &models.Submission{
			MosqueName:     name,
			Address:        "1 Test St",
			Suburb:         "Testville",
			State:          "VIC",
			Time:           "8:00 PM",
			Rakaat:         20,
			SubmitterName:  "Ali",
			SubmitterEmail: "a@example.com",
			Status:         models.SubmissionStatusPending,
		}
		require.NoError(t, repo.Create(context.Background(), sub))
		require.NoError(t, db.Model(sub).Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error)
	}

	submissions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, submissions, 3)
	assert.Equal(t, "Third", submissions[0].MosqueName)
	assert.Equal(t, "First", submissions[2].MosqueName)
}

func TestSubmissionUpdateFieldsMissingRow(t *testing.T) {
	t.Parallel()

	db := setupRepoTestDB(t)
	repo := NewSubmissionRepository(db)

	err := repo.UpdateFields(context.Background(), 99, map[string]any{"mosque_name": "X"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSubmissionDeleteMissingRow(t *testing.T) {
	t.Parallel()

	db := setupRepoTestDB(t)
	repo := NewSubmissionRepository(db)

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
