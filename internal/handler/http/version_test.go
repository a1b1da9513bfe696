package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"

	services := testServices()
	services.AppInfoService = &mockAppInfoService{version: want}
	h := newTestHandler(t, services, "")

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_ThroughRouter(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
}

func TestGetServerInfo(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/info", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var info models.ServerInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "test-version", info.Version)
	assert.Equal(t, int64(1), info.ChainID)
	assert.Equal(t, models.DefaultKeyScheme, info.DefaultKeyScheme)
}
