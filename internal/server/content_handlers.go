package server

import (
	"log/slog"

	"marketforge/internal/cache"
	"marketforge/internal/middleware"
	"marketforge/internal/models"
	"marketforge/internal/observability"
	"marketforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GenerateContent handles POST /api/content/generate. The prompt and author
// are upserted, the completion is fetched from the provider, and the
// resulting row is persisted. The response carries only the generated text.
func (s *Server) GenerateContent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Prompt    string `json:"prompt"`
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	content, err := s.contentService.Generate(ctx, service.GenerateInput{
		Prompt:   req.Prompt,
		Username: req.UserName,
		Email:    req.UserEmail,
	})
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return models.RespondWithError(c, statusForError(err), err)
	}

	// A new row changes what the list endpoint returns.
	cache.Invalidate(ctx, cache.ContentListKey)

	middleware.Logger.InfoContext(ctx, "content generated",
		slog.Uint64("content_id", uint64(content.ID)),
		slog.Uint64("prompt_id", uint64(content.PromptID)),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"content": content.ContentText,
	})
}
