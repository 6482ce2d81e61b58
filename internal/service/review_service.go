package service

import (
	"context"
	"time"

	"marketforge/internal/models"
	"marketforge/internal/repository"
)

// ReviewService appends reviews to generated content.
type ReviewService struct {
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	reviewRepo  repository.ReviewRepository
}

// SubmitReviewInput carries the reviewed content id, the corrected text, an
// optional comment, and the reviewer identity.
type SubmitReviewInput struct {
	ContentID        uint
	UpdatedContent   string
	Comment          *string
	ReviewerUsername string
	ReviewerEmail    string
}

// ReviewRecord is the flat response shape for a submitted review.
type ReviewRecord struct {
	ReviewID         uint      `json:"review_id"`
	ContentID        uint      `json:"content_id"`
	ReviewerID       uint      `json:"reviewer_id"`
	ReviewerUsername string    `json:"reviewer_username"`
	UpdatedContent   string    `json:"updated_content"`
	Comment          *string   `json:"comment"`
	ReviewedAt       time.Time `json:"reviewed_at"`
}

// NewReviewService wires the review service with its repositories.
func NewReviewService(
	contentRepo repository.ContentRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
) *ReviewService {
	return &ReviewService{
		contentRepo: contentRepo,
		userRepo:    userRepo,
		reviewRepo:  reviewRepo,
	}
}

// SubmitReview verifies the content exists (NOT_FOUND otherwise, preserved
// up through the HTTP layer), upserts the reviewer by email, and appends the
// review row. No review row is written when the content is unknown.
func (s *ReviewService) SubmitReview(ctx context.Context, in SubmitReviewInput) (*ReviewRecord, error) {
	if in.UpdatedContent == "" {
		return nil, models.NewValidationError("Updated content is required")
	}
	if in.ReviewerUsername == "" {
		return nil, models.NewValidationError("Reviewer username is required")
	}
	if in.ReviewerEmail == "" {
		return nil, models.NewValidationError("Reviewer email is required")
	}

	if _, err := s.contentRepo.GetByID(ctx, in.ContentID); err != nil {
		return nil, err
	}

	reviewer, err := s.userRepo.FindOrCreateByEmail(ctx, in.ReviewerUsername, in.ReviewerEmail)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ContentID:      in.ContentID,
		ReviewerID:     reviewer.ID,
		UpdatedContent: in.UpdatedContent,
		Comment:        in.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return &ReviewRecord{
		ReviewID:         review.ID,
		ContentID:        review.ContentID,
		ReviewerID:       reviewer.ID,
		ReviewerUsername: reviewer.Username,
		UpdatedContent:   review.UpdatedContent,
		Comment:          review.Comment,
		ReviewedAt:       review.ReviewedAt,
	}, nil
}
