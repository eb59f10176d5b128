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

	router.Group(func(r chi.Router) {
		r.Get("/api/app/version", h.getAppVersion)

		r.Get("/api/version", h.getVersion)
		r.Post("/api/version/refresh", h.refreshVersion)
		r.Get("/api/version/cache", h.getCacheStatus)
		r.Delete("/api/version/cache", h.clearCache)
	})

	// rendered artifacts, same bytes the generator writes to disk
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/version.{ext}", h.getArtifact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
