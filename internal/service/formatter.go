package service

import (
	"time"

	"marketforge/internal/models"
)

// FormattedUser is the nested author shape inside a formatted record.
type FormattedUser struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// FormattedReviewer is the nested reviewer shape inside a formatted review.
type FormattedReviewer struct {
	ReviewerID       uint   `json:"reviewer_id"`
	ReviewerUsername string `json:"reviewer_username"`
	ReviewerEmail    string `json:"reviewer_email"`
}

// FormattedReview is one review inside a formatted record.
type FormattedReview struct {
	ID             uint               `json:"id"`
	UpdatedContent string             `json:"updated_content"`
	Comment        *string            `json:"comment"`
	ReviewedAt     time.Time          `json:"reviewed_at"`
	Reviewer       *FormattedReviewer `json:"reviewer"`
}

// FormattedContent is the nested response shape for a generated-content row
// with its author and reviews.
type FormattedContent struct {
	ID          uint              `json:"id"`
	PromptID    uint              `json:"prompt_id"`
	ContentText string            `json:"content_text"`
	GeneratedAt time.Time         `json:"generated_at"`
	User        *FormattedUser    `json:"user"`
	Reviews     []FormattedReview `json:"reviews"`
}

// FormatContent projects a content row (with preloaded associations) into the
// nested response shape. Pure function: authorless content formats with a
// null user, content without reviews with an empty list.
func FormatContent(content *models.GeneratedContent) FormattedContent {
	formatted := FormattedContent{
		ID:          content.ID,
		PromptID:    content.PromptID,
		ContentText: content.ContentText,
		GeneratedAt: content.GeneratedAt,
		Reviews:     make([]FormattedReview, 0, len(content.Reviews)),
	}

	if content.User != nil {
		formatted.User = &FormattedUser{
			UserID:   content.User.ID,
			Username: content.User.Username,
			Email:    content.User.Email,
		}
	}

	for _, review := range content.Reviews {
		fr := FormattedReview{
			ID:             review.ID,
			UpdatedContent: review.UpdatedContent,
			Comment:        review.Comment,
			ReviewedAt:     review.ReviewedAt,
		}
		if review.Reviewer != nil {
			fr.Reviewer = &FormattedReviewer{
				ReviewerID:       review.Reviewer.ID,
				ReviewerUsername: review.Reviewer.Username,
				ReviewerEmail:    review.Reviewer.Email,
			}
		}
		formatted.Reviews = append(formatted.Reviews, fr)
	}

	return formatted
}
