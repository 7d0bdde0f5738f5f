package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/pkg/logger"
)

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(logger.New("error"), "upcitemdb", "openbeautyfacts")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, Version, resp.Version)
	assert.Equal(t, []string{"upcitemdb", "openbeautyfacts"}, resp.Sources)
	assert.False(t, resp.Timestamp.IsZero())
}
