package repository

import (
	"context"
	"errors"

	"raptor/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow-edge data operations
type FollowRepository interface {
	// Toggle flips the follow edge (followerID -> followeeID) and returns
	// true when the edge ends up present. The followee is not required to
	// exist and self-follows are not rejected; both mirror the legacy API.
	Toggle(ctx context.Context, followerID, followeeID uint) (bool, error)
	ListFollowers(ctx context.Context, userID uint) ([]models.Follow, error)
	ListFollowing(ctx context.Context, userID uint) ([]models.Follow, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Toggle(ctx context.Context, followerID, followeeID uint) (bool, error) {
	followed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var follow models.Follow
		err := tx.Where("user_id = ? AND following_id = ?", followerID, followeeID).First(&follow).Error
		switch {
		case err == nil:
			return tx.Delete(&follow).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			followed = true
			return tx.Create(&models.Follow{UserID: followerID, FollowingID: followeeID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return followed, nil
}

// ListFollowers returns the follow edges pointing at userID, each with the
// follower's profile preloaded.
func (r *followRepository) ListFollowers(ctx context.Context, userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("following_id = ?", userID).
		Find(&follows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

// ListFollowing returns the follow edges leaving userID, each with the
// followee's profile preloaded.
func (r *followRepository) ListFollowing(ctx context.Context, userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Preload("Following").
		Where("user_id = ?", userID).
		Find(&follows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}
