package repository

import (
	"context"
	"errors"

	"raptor/internal/models"

	"gorm.io/gorm"
)

// RippleRepository defines the interface for ripple data operations
type RippleRepository interface {
	Create(ctx context.Context, ripple *models.Ripple) error
	ListByRapt(ctx context.Context, raptID uint) ([]models.Ripple, error)
	// UpdateOwned edits a ripple only when (rippleID, userID, raptID) all
	// match a single stored row. A mismatch on any of the three is
	// reported as not found, indistinguishable from a missing ripple.
	UpdateOwned(ctx context.Context, rippleID, userID, raptID uint, content string) (*models.Ripple, error)
	DeleteOwned(ctx context.Context, rippleID, userID, raptID uint) error
}

type rippleRepository struct {
	db *gorm.DB
}

// NewRippleRepository creates a new ripple repository
func NewRippleRepository(db *gorm.DB) RippleRepository {
	return &rippleRepository{db: db}
}

func (r *rippleRepository) Create(ctx context.Context, ripple *models.Ripple) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The parent rapt must exist; nothing else holds the edge together
		// with FK enforcement off.
		var count int64
		if err := tx.Model(&models.Rapt{}).Where("id = ?", ripple.RaptID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return models.NewNotFoundError("Rapt", ripple.RaptID)
		}
		return tx.Create(ripple).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *rippleRepository) ListByRapt(ctx context.Context, raptID uint) ([]models.Ripple, error) {
	var ripples []models.Ripple
	err := r.db.WithContext(ctx).
		Where("rapt_id = ?", raptID).
		Order("created_at DESC").
		Find(&ripples).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ripples, nil
}

func (r *rippleRepository) UpdateOwned(ctx context.Context, rippleID, userID, raptID uint, content string) (*models.Ripple, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Ripple{}).
		Where("id = ? AND user_id = ? AND rapt_id = ?", rippleID, userID, raptID).
		Update("content", content)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Ripple", rippleID)
	}

	var ripple models.Ripple
	if err := r.db.WithContext(ctx).First(&ripple, rippleID).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &ripple, nil
}

func (r *rippleRepository) DeleteOwned(ctx context.Context, rippleID, userID, raptID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND rapt_id = ?", rippleID, userID, raptID).
		Delete(&models.Ripple{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Ripple", rippleID)
	}
	return nil
}
