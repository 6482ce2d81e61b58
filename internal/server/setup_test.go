package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketforge/internal/config"
	"marketforge/internal/database"
	"marketforge/internal/models"
	"marketforge/internal/repository"
	"marketforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubGenerator satisfies llm.TextGenerator without a network.
type stubGenerator struct {
	completeFn func(ctx context.Context, prompt string) (string, error)
}

func (s *stubGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	return s.completeFn(ctx, prompt)
}

func staticGenerator(text string) *stubGenerator {
	return &stubGenerator{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return text, nil
		},
	}
}

// setupTestServer builds a Server over an in-memory SQLite database with the
// given completion generator. Prometheus middleware stays nil so repeated
// setups across tests do not re-register collectors.
func setupTestServer(t *testing.T, generator *stubGenerator) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:      "0",
		JWTSecret: "test-secret",
	}

	promptRepo := repository.NewPromptRepository(db)
	userRepo := repository.NewUserRepository(db)
	contentRepo := repository.NewContentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	s := &Server{
		config:      cfg,
		db:          db,
		promptRepo:  promptRepo,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		reviewRepo:  reviewRepo,
	}
	s.contentService = service.NewContentService(promptRepo, userRepo, contentRepo, generator)
	s.reviewService = service.NewReviewService(contentRepo, userRepo, reviewRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
		},
	})
	s.SetupRoutes(app)

	return s, app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func generateOne(t *testing.T, app *fiber.App, prompt, username, email string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/content/generate", map[string]any{
		"prompt":     prompt,
		"user_name":  username,
		"user_email": email,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}
