package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/info", h.getServerInfo)

		r.Get("/api/agreements/{address}", h.listAgreements)
		r.Get("/api/agreements/{address}/{index}", h.getAgreement)
		r.Get("/api/signatures/{address}", h.listSignatures)
		r.Get("/api/profiles/{address}", h.getProfile)

		r.Get("/ipfs/{cid}", h.fetch)
	})

	// routes that act on behalf of the token subject
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/agreements", h.createAgreement)
		r.Post("/api/signatures", h.createSignature)
		r.With(h.uploadHashing).Post("/pinning/pinFileToIPFS", h.pin)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
