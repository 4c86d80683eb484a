package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	handler := NewHealthHandler("Product Management API", "1.0.0")

	rec := httptest.NewRecorder()
	handler.healthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "Product Management API", body.Service)
	assert.Equal(t, "1.0.0", body.Version)
}

func TestHealthHandler_Root(t *testing.T) {
	handler := NewHealthHandler("Product Management API", "1.0.0")

	rec := httptest.NewRecorder()
	handler.root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product Management API", body["service"])
	assert.Contains(t, body, "health")
}
