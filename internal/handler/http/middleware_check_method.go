// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. A method that is
// not registered for the matched route is answered with 404 instead of 405,
// so the journal never reveals which routes exist. Parameterised routes such
// as /api/entry/{id} are matched through the router itself.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			logger.FromRequest(r).Debug().
				Str("func", "CheckHTTPMethod").
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("method is not registered for route")
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
