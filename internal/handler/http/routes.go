package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// device-facing routes
	router.Group(func(r chi.Router) {
		r.Get("/api/status", h.status)
		r.Get("/api/sync", h.sync)
		r.Get("/api/cards/{uid}", h.lookupCard)
		r.Post("/api/last_scan", h.lastScan)
	})

	// operator-facing routes
	router.Group(func(r chi.Router) {
		r.Get("/api/cards", h.listCards)
		r.Post("/api/cards", h.registerCard)
		r.Patch("/api/cards/{uid}", h.setAuthorized)
		r.Delete("/api/cards/{uid}", h.removeCard)
		r.Post("/api/enroll", h.enroll)
	})

	return router
}
