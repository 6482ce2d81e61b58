package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketforge/internal/config"
	"marketforge/internal/llm"
	"marketforge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContentHappyPath(t *testing.T) {
	s, app := setupTestServer(t, staticGenerator("Fresh words, fast."))

	resp := doJSON(t, app, http.MethodPost, "/api/content/generate", map[string]any{
		"prompt":     "  write   a tagline ",
		"user_name":  "ada",
		"user_email": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeJSON[map[string]string](t, resp)
	assert.Equal(t, "Fresh words, fast.", body["content"])

	var prompt models.Prompt
	require.NoError(t, s.db.First(&prompt).Error)
	assert.Equal(t, "write a tagline", prompt.PromptText, "the stored prompt is the sanitized one")

	var user models.User
	require.NoError(t, s.db.First(&user).Error)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "ada@example.com", user.Email)

	var content models.GeneratedContent
	require.NoError(t, s.db.First(&content).Error)
	assert.Equal(t, prompt.ID, content.PromptID)
	assert.Equal(t, user.ID, content.UserID)
	assert.Equal(t, "Fresh words, fast.", content.ContentText)
}

func TestGenerateContentDeduplicatesPromptAndUser(t *testing.T) {
	s, app := setupTestServer(t, staticGenerator("copy"))

	generateOne(t, app, "write a tagline", "ada", "ada@example.com")
	// Same prompt modulo whitespace, same email under a different name.
	generateOne(t, app, "  write a   tagline ", "ada-second", "ada@example.com")

	var promptCount, userCount, contentCount int64
	require.NoError(t, s.db.Model(&models.Prompt{}).Count(&promptCount).Error)
	require.NoError(t, s.db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, s.db.Model(&models.GeneratedContent{}).Count(&contentCount).Error)

	assert.Equal(t, int64(1), promptCount, "equal prompts after sanitization share one row")
	assert.Equal(t, int64(1), userCount, "users are keyed by email")
	assert.Equal(t, int64(2), contentCount, "every generation call persists its own content row")

	var user models.User
	require.NoError(t, s.db.First(&user).Error)
	assert.Equal(t, "ada", user.Username, "the stored username stands on re-submission")
}

func TestGenerateContentValidation(t *testing.T) {
	s, app := setupTestServer(t, staticGenerator("unused"))

	cases := []struct {
		name string
		body map[string]any
	}{
		{"whitespace-only prompt", map[string]any{"prompt": " \t ", "user_name": "ada", "user_email": "ada@example.com"}},
		{"missing prompt", map[string]any{"user_name": "ada", "user_email": "ada@example.com"}},
		{"missing user name", map[string]any{"prompt": "hello", "user_email": "ada@example.com"}},
		{"missing email", map[string]any{"prompt": "hello", "user_name": "ada"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/content/generate", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decodeJSON[map[string]string](t, resp)
			assert.Equal(t, models.CodeValidation, body["code"])
		})
	}

	var contentCount int64
	require.NoError(t, s.db.Model(&models.GeneratedContent{}).Count(&contentCount).Error)
	assert.Zero(t, contentCount)
}

func TestGenerateContentUpstreamFailure(t *testing.T) {
	s, app := setupTestServer(t, &stubGenerator{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("completion request failed with status 503")
		},
	})

	resp := doJSON(t, app, http.MethodPost, "/api/content/generate", map[string]any{
		"prompt":     "hello",
		"user_name":  "ada",
		"user_email": "ada@example.com",
	})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	body := decodeJSON[map[string]string](t, resp)
	assert.Equal(t, models.CodeUpstream, body["code"])

	var contentCount int64
	require.NoError(t, s.db.Model(&models.GeneratedContent{}).Count(&contentCount).Error)
	assert.Zero(t, contentCount, "a provider failure must not leave a content row behind")

	// The prompt and user upserts happen before the provider call and stay.
	var promptCount int64
	require.NoError(t, s.db.Model(&models.Prompt{}).Count(&promptCount).Error)
	assert.Equal(t, int64(1), promptCount)
}

// TestGenerateContentEndToEnd runs the full path against a fake
// OpenAI-compatible provider instead of a stub generator.
func TestGenerateContentEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Launch loud."}}]
		}`))
	}))
	t.Cleanup(upstream.Close)

	client, err := llm.NewClient(&config.Config{
		LLMAPIKey:  "test-key",
		LLMBaseURL: upstream.URL,
		LLMModel:   "test-model",
	})
	require.NoError(t, err)

	s, app := setupTestServer(t, &stubGenerator{completeFn: client.Complete})

	resp := doJSON(t, app, http.MethodPost, "/api/content/generate", map[string]any{
		"prompt":     "announce the launch",
		"user_name":  "ada",
		"user_email": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeJSON[map[string]string](t, resp)
	assert.Equal(t, "Launch loud.", body["content"])

	var content models.GeneratedContent
	require.NoError(t, s.db.First(&content).Error)
	assert.Equal(t, "Launch loud.", content.ContentText)
}
