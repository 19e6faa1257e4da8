// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter mirrors the shape of the journal routes without services.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/api/entry", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/api/entry/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("entry " + chi.URLParam(r, "id")))
	})
	router.Delete("/api/entry/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/entries", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "POST /api/entry registered", method: http.MethodPost, path: "/api/entry", expectedStatus: http.StatusCreated},
		{name: "GET /api/entry/{id} registered", method: http.MethodGet, path: "/api/entry/abc", expectedStatus: http.StatusOK},
		{name: "DELETE /api/entry/{id} registered", method: http.MethodDelete, path: "/api/entry/abc", expectedStatus: http.StatusOK},
		{name: "GET /api/entries registered", method: http.MethodGet, path: "/api/entries", expectedStatus: http.StatusOK},

		{name: "GET /api/entry not registered", method: http.MethodGet, path: "/api/entry", expectedStatus: http.StatusNotFound},
		{name: "PATCH /api/entry/{id} not registered", method: http.MethodPatch, path: "/api/entry/abc", expectedStatus: http.StatusNotFound},
		{name: "PUT /api/entry/{id} not registered", method: http.MethodPut, path: "/api/entry/abc", expectedStatus: http.StatusNotFound},
		{name: "DELETE /api/entries not registered", method: http.MethodDelete, path: "/api/entries", expectedStatus: http.StatusNotFound},

		{name: "unknown route", method: http.MethodGet, path: "/api/nonexistent", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughKeepsURLParams(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/entry/42", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "entry 42", rr.Body.String())
}

func TestCheckHTTPMethod_CalledDirectlyForRegisteredMethod(t *testing.T) {
	router := buildRouter()
	check := CheckHTTPMethod(router)

	req := httptest.NewRequest(http.MethodGet, "/api/entry/7", nil)
	rr := httptest.NewRecorder()
	check(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "entry 7", rr.Body.String())
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()
	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodPatch
			}
			req := httptest.NewRequest(method, "/api/entry/abc", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			done <- rr.Code
		}(i)
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.True(t, code == http.StatusOK || code == http.StatusNotFound,
			"unexpected status code: %d", code)
	}
}
