// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"marketforge/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PromptRepository defines the interface for prompt operations
type PromptRepository interface {
	FindOrCreateByText(ctx context.Context, text string) (*models.Prompt, error)
	GetByID(ctx context.Context, id uint) (*models.Prompt, error)
}

type promptRepository struct {
	db *gorm.DB
}

// NewPromptRepository creates a new PromptRepository
func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

// FindOrCreateByText resolves a prompt row for the given text as a single
// atomic insert-or-fetch. ON CONFLICT DO NOTHING against the unique index on
// prompt_text closes the check-then-act window between concurrent writers.
func (r *promptRepository) FindOrCreateByText(ctx context.Context, text string) (*models.Prompt, error) {
	prompt := models.Prompt{PromptText: text}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "prompt_text"}},
			DoNothing: true,
		}).
		Create(&prompt).Error
	if err != nil {
		return nil, err
	}
	if prompt.ID != 0 {
		return &prompt, nil
	}

	// The row already existed; the insert was a no-op, so fetch it.
	if err := r.db.WithContext(ctx).Where("prompt_text = ?", text).First(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) GetByID(ctx context.Context, id uint) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := r.db.WithContext(ctx).First(&prompt, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Prompt", id)
		}
		return nil, err
	}
	return &prompt, nil
}
