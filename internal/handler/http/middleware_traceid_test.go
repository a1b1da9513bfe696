package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	rec := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rec.Header().Get(traceIDHeader)
	parsed, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestWithTraceID_ReusesIncoming(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "caller-trace")
	rec := httptest.NewRecorder()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, "caller-trace", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler(t, testServices(), "")
	mw := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	first, second := httptest.NewRecorder(), httptest.NewRecorder()
	mw.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	mw.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}

func TestWithTraceID_ReplacesMalformedIncoming(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "bad id\twith tab")
	rec := httptest.NewRecorder()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}
