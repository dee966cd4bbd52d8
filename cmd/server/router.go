package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/readme-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (a *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(a.logger))
	r.Use(middleware.Recoverer)
	if a.metrics != nil {
		r.Use(a.metrics.Middleware)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-readme", a.readmeHandler.GenerateReadme)
		r.Get("/status", a.readmeHandler.Status)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if a.metrics != nil {
		r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	}

	return r
}
