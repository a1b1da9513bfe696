// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path that exists only under other methods is answered with 404 instead
// of chi's 405, so callers cannot probe which methods a route supports.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//
// Parameterised routes are matched with [chi.Mux.Match], so
// /api/agreements/0xabc behaves like any static path.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
