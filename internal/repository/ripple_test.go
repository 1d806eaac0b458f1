package repository

import (
	"context"
	"testing"

	"raptor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRippleRepository_OwnedTripleMatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewRippleRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "Owner", "owner")
	other := createTestUser(t, db, "Other", "other")
	rapt := createTestRapt(t, db, owner.ID, "discussed")
	otherRapt := createTestRapt(t, db, owner.ID, "unrelated")

	ripple := &models.Ripple{UserID: owner.ID, RaptID: rapt.ID, Content: "original"}
	require.NoError(t, repo.Create(ctx, ripple))

	t.Run("Matching triple edits", func(t *testing.T) {
		updated, err := repo.UpdateOwned(ctx, ripple.ID, owner.ID, rapt.ID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
	})

	t.Run("Wrong user is not-found", func(t *testing.T) {
		_, err := repo.UpdateOwned(ctx, ripple.ID, other.ID, rapt.ID, "hijack")
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("Wrong rapt is not-found", func(t *testing.T) {
		_, err := repo.UpdateOwned(ctx, ripple.ID, owner.ID, otherRapt.ID, "misfiled")
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("Delete needs the same triple", func(t *testing.T) {
		err := repo.DeleteOwned(ctx, ripple.ID, owner.ID, otherRapt.ID)
		assert.True(t, models.IsNotFound(err))

		require.NoError(t, repo.DeleteOwned(ctx, ripple.ID, owner.ID, rapt.ID))

		ripples, err := repo.ListByRapt(ctx, rapt.ID)
		require.NoError(t, err)
		assert.Empty(t, ripples)
	})
}

func TestRippleRepository_CreateRequiresRapt(t *testing.T) {
	db := newTestDB(t)
	repo := NewRippleRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "Orphan", "orphan")

	err := repo.Create(ctx, &models.Ripple{UserID: user.ID, RaptID: 9999, Content: "lost"})
	assert.True(t, models.IsNotFound(err))

	var count int64
	require.NoError(t, db.Model(&models.Ripple{}).Where("rapt_id = ?", 9999).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRippleRepository_ListByRaptOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewRippleRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "User", "user")
	rapt := createTestRapt(t, db, user.ID, "threaded")

	for _, content := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.Ripple{
			UserID: user.ID, RaptID: rapt.ID, Content: content,
		}))
	}

	ripples, err := repo.ListByRapt(ctx, rapt.ID)
	require.NoError(t, err)
	assert.Len(t, ripples, 3)
}
