package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskmgmt/notify-api/internal/api"
)

// setupRouter creates and configures the trigger surface with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	notifyHandler := api.NewNotifyHandler(app.orchestrator, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/notifications/run", notifyHandler.Run)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
