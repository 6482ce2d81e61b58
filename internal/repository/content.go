package repository

import (
	"context"

	"marketforge/internal/models"

	"gorm.io/gorm"
)

// ContentRepository defines the interface for generated-content operations
type ContentRepository interface {
	Create(ctx context.Context, content *models.GeneratedContent) error
	GetByID(ctx context.Context, id uint) (*models.GeneratedContent, error)
	List(ctx context.Context, limit, offset int) ([]*models.GeneratedContent, error)
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *models.GeneratedContent) error {
	return r.db.WithContext(ctx).Create(content).Error
}

// GetByID loads a content row with its author and reviews (with reviewers)
// preloaded, ready for formatting.
func (r *contentRepository) GetByID(ctx context.Context, id uint) (*models.GeneratedContent, error) {
	var content models.GeneratedContent
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Reviews").
		Preload("Reviews.Reviewer").
		First(&content, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Generated content", id)
		}
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) List(ctx context.Context, limit, offset int) ([]*models.GeneratedContent, error) {
	var contents []*models.GeneratedContent
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Reviews").
		Preload("Reviews.Reviewer").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&contents).Error
	return contents, err
}
