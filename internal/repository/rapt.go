package repository

import (
	"context"
	"errors"

	"raptor/internal/models"

	"gorm.io/gorm"
)

// RaptRepository defines the interface for rapt data operations
type RaptRepository interface {
	Create(ctx context.Context, rapt *models.Rapt) error
	GetByID(ctx context.Context, id uint) (*models.Rapt, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Rapt, error)
	ListLatest(ctx context.Context) ([]models.Rapt, error)
	ListLikedBy(ctx context.Context, userID uint) ([]models.Rapt, error)
	Search(ctx context.Context, query string) ([]models.Rapt, error)
	// UpdateOwned edits a rapt only when it belongs to userID; a missing
	// rapt and a rapt owned by someone else are both reported as not found.
	UpdateOwned(ctx context.Context, raptID, userID uint, title, content string) (*models.Rapt, error)
	DeleteOwned(ctx context.Context, raptID, userID uint) error
	// ToggleLike flips the like state of (userID, raptID) and keeps the
	// denormalized counter in step, both writes inside one transaction.
	// Returns true when the rapt ends up liked.
	ToggleLike(ctx context.Context, userID, raptID uint) (bool, error)
}

type raptRepository struct {
	db *gorm.DB
}

// NewRaptRepository creates a new rapt repository
func NewRaptRepository(db *gorm.DB) RaptRepository {
	return &raptRepository{db: db}
}

func (r *raptRepository) Create(ctx context.Context, rapt *models.Rapt) error {
	if err := r.db.WithContext(ctx).Create(rapt).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *raptRepository) GetByID(ctx context.Context, id uint) (*models.Rapt, error) {
	var rapt models.Rapt
	err := r.db.WithContext(ctx).Preload("User").First(&rapt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Rapt", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &rapt, nil
}

func (r *raptRepository) ListByUser(ctx context.Context, userID uint) ([]models.Rapt, error) {
	var rapts []models.Rapt
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rapts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rapts, nil
}

func (r *raptRepository) ListLatest(ctx context.Context) ([]models.Rapt, error) {
	var rapts []models.Rapt
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&rapts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rapts, nil
}

func (r *raptRepository) ListLikedBy(ctx context.Context, userID uint) ([]models.Rapt, error) {
	var rapts []models.Rapt
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN likes ON likes.rapt_id = rapts.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Find(&rapts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rapts, nil
}

func (r *raptRepository) Search(ctx context.Context, query string) ([]models.Rapt, error) {
	var rapts []models.Rapt
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("LOWER(title) LIKE LOWER(?)", "%"+query+"%").
		Find(&rapts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rapts, nil
}

func (r *raptRepository) UpdateOwned(ctx context.Context, raptID, userID uint, title, content string) (*models.Rapt, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Rapt{}).
		Where("id = ? AND user_id = ?", raptID, userID).
		Updates(map[string]interface{}{"title": title, "content": content})
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Rapt", raptID)
	}
	return r.GetByID(ctx, raptID)
}

func (r *raptRepository) DeleteOwned(ctx context.Context, raptID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", raptID, userID).Delete(&models.Rapt{})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Rapt", raptID)
		}
		// Ripples and likes of the rapt go with it.
		if err := tx.Where("rapt_id = ?", raptID).Delete(&models.Ripple{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("rapt_id = ?", raptID).Delete(&models.Like{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *raptRepository) ToggleLike(ctx context.Context, userID, raptID uint) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var like models.Like
		err := tx.Where("user_id = ? AND rapt_id = ?", userID, raptID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			return bumpLikes(tx, raptID, "likes - 1")
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Like{UserID: userID, RaptID: raptID}).Error; err != nil {
				return err
			}
			liked = true
			return bumpLikes(tx, raptID, "likes + 1")
		default:
			return err
		}
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return false, err
		}
		return false, models.NewInternalError(err)
	}
	return liked, nil
}

// bumpLikes moves the denormalized counter. Zero matched rows means the
// rapt does not exist; reporting not-found rolls the like row back with
// the rest of the transaction.
func bumpLikes(tx *gorm.DB, raptID uint, expr string) error {
	res := tx.Model(&models.Rapt{}).
		Where("id = ?", raptID).
		Update("likes", gorm.Expr(expr))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Rapt", raptID)
	}
	return nil
}
