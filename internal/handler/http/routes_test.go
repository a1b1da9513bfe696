package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestInit_RegistersRoutes(t *testing.T) {
	router := newTestHandler(t, testServices(), "").Init()

	routes := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes[method+" "+route] = true
		return nil
	})
	assert.NoError(t, err)

	for _, want := range []string{
		"POST /api/auth/login",
		"GET /api/version/",
		"GET /api/info",
		"POST /api/agreements",
		"POST /api/signatures",
		"GET /api/agreements/{address}",
		"GET /api/agreements/{address}/{index}",
		"GET /api/signatures/{address}",
		"GET /api/profiles/{address}",
		"POST /pinning/pinFileToIPFS",
		"GET /ipfs/{cid}",
	} {
		assert.True(t, routes[want], "route %q is not registered", want)
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/user/register", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	h := newTestHandler(t, testServices(), "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	services := testServices()
	// nil LedgerService panics inside the handler
	services.LedgerService = nil
	h := newTestHandler(t, services, "")

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/profiles/"+testOwner, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
