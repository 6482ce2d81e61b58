package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketforge/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	s, app := setupTestServer(t, staticGenerator("unused"))

	// The auth routes are not part of SetupRoutes while the API is public;
	// mount them here the way SetupRoutes would.
	middleware.InitMiddleware(s.config)
	app.Post("/api/auth/token", s.IssueToken)
	app.Get("/api/protected", middleware.AuthRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})

	resp := doJSON(t, app, http.MethodPost, "/api/auth/token", map[string]any{
		"username": "ada",
		"email":    "ada@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authed, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = authed.Body.Close() }()
	assert.Equal(t, http.StatusOK, authed.StatusCode)

	protected := decodeJSON[map[string]float64](t, authed)
	assert.Equal(t, float64(1), protected["user_id"])
}

func TestIssueTokenValidation(t *testing.T) {
	s, app := setupTestServer(t, staticGenerator("unused"))
	app.Post("/api/auth/token", s.IssueToken)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/token", map[string]any{
		"username": "ada",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthRequiredRejectsBadTokens(t *testing.T) {
	s, app := setupTestServer(t, staticGenerator("unused"))
	middleware.InitMiddleware(s.config)
	app.Get("/api/protected", middleware.AuthRequired, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
