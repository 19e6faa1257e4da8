package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Post("/api/entry", h.createEntry)
	router.Get("/api/entry/{id}", h.getEntry)
	router.Put("/api/entry/{id}", h.updateEntry)
	router.Delete("/api/entry/{id}", h.deleteEntry)
	router.Get("/api/entries", h.listEntries)

	router.Post("/api/export", h.exportEntries)
	router.Get("/api/export", h.renderEntries)

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
