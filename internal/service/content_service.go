package service

import (
	"context"

	"marketforge/internal/llm"
	"marketforge/internal/models"
	"marketforge/internal/repository"
)

// ContentService drives the prompt -> generate -> persist lifecycle.
type ContentService struct {
	promptRepo  repository.PromptRepository
	userRepo    repository.UserRepository
	contentRepo repository.ContentRepository
	generator   llm.TextGenerator
}

// GenerateInput carries a raw prompt and the author identity.
type GenerateInput struct {
	Prompt   string
	Username string
	Email    string
}

// NewContentService wires the content service with its repositories and generator.
func NewContentService(
	promptRepo repository.PromptRepository,
	userRepo repository.UserRepository,
	contentRepo repository.ContentRepository,
	generator llm.TextGenerator,
) *ContentService {
	return &ContentService{
		promptRepo:  promptRepo,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		generator:   generator,
	}
}

// Generate sanitizes the prompt, upserts the prompt row (deduplicated by
// text) and the author (keyed by email), requests a completion from the
// upstream provider, and persists the result. Upstream failures surface as
// UPSTREAM_ERROR; nothing is written for the content row in that case.
func (s *ContentService) Generate(ctx context.Context, in GenerateInput) (*models.GeneratedContent, error) {
	promptText := SanitizePrompt(in.Prompt)
	if promptText == "" {
		return nil, models.NewValidationError("Prompt is required")
	}
	if in.Username == "" {
		return nil, models.NewValidationError("User name is required")
	}
	if in.Email == "" {
		return nil, models.NewValidationError("User email is required")
	}

	prompt, err := s.promptRepo.FindOrCreateByText(ctx, promptText)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.FindOrCreateByEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Complete(ctx, promptText)
	if err != nil {
		return nil, models.NewUpstreamError(err)
	}

	content := &models.GeneratedContent{
		PromptID:    prompt.ID,
		UserID:      author.ID,
		ContentText: text,
	}
	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	// Reload with associations so callers can format the full record.
	return s.contentRepo.GetByID(ctx, content.ID)
}

// GetContent returns one content row with associations, formatted-ready.
func (s *ContentService) GetContent(ctx context.Context, id uint) (*models.GeneratedContent, error) {
	return s.contentRepo.GetByID(ctx, id)
}

// ListContents returns a page of content rows with associations.
func (s *ContentService) ListContents(ctx context.Context, limit, offset int) ([]*models.GeneratedContent, error) {
	return s.contentRepo.List(ctx, limit, offset)
}
