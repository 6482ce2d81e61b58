package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivenessCheck(t *testing.T) {
	_, app := setupTestServer(t, staticGenerator("unused"))

	resp := doJSON(t, app, http.MethodGet, "/health/live", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "up", body["status"])
}

func TestReadinessCheckHealthyWithoutRedis(t *testing.T) {
	_, app := setupTestServer(t, staticGenerator("unused"))

	resp := doJSON(t, app, http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "healthy", body["status"])

	checks, ok := body["checks"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", checks["database"])
	assert.Equal(t, "unavailable", checks["redis"], "the cache is optional and must not gate readiness")
}

func TestHealthCheckAlias(t *testing.T) {
	_, app := setupTestServer(t, staticGenerator("unused"))

	resp := doJSON(t, app, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownRouteIs404(t *testing.T) {
	_, app := setupTestServer(t, staticGenerator("unused"))

	resp := doJSON(t, app, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
