package server

import (
	"log/slog"

	"marketforge/internal/cache"
	"marketforge/internal/middleware"
	"marketforge/internal/models"
	"marketforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateReview handles POST /api/reviews/. Reviews are append-only: a
// second review of the same content adds a row rather than replacing one.
func (s *Server) CreateReview(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		ContentID        uint    `json:"content_id"`
		UpdatedContent   string  `json:"updated_content"`
		Comment          *string `json:"comment"`
		ReviewerUsername string  `json:"reviewer_username"`
		ReviewerEmail    string  `json:"reviewer_email"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}
	if req.ContentID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Content ID is required"))
	}

	record, err := s.reviewService.SubmitReview(ctx, service.SubmitReviewInput{
		ContentID:        req.ContentID,
		UpdatedContent:   req.UpdatedContent,
		Comment:          req.Comment,
		ReviewerUsername: req.ReviewerUsername,
		ReviewerEmail:    req.ReviewerEmail,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	// The reviewed record and the list both embed reviews.
	cache.InvalidateContent(ctx, record.ContentID)

	middleware.Logger.InfoContext(ctx, "review submitted",
		slog.Uint64("review_id", uint64(record.ReviewID)),
		slog.Uint64("content_id", uint64(record.ContentID)),
	)

	return c.Status(fiber.StatusCreated).JSON(record)
}
