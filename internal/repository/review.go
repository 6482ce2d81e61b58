package repository

import (
	"context"

	"marketforge/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review operations.
// Reviews are append-only; there is no update or delete.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	ListByContent(ctx context.Context, contentID uint) ([]*models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("Reviewer").First(&review, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByContent(ctx context.Context, contentID uint) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("content_id = ?", contentID).
		Order("id").
		Find(&reviews).Error
	return reviews, err
}
