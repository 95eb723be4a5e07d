package api

import (
	"net/http"

	"github.com/benson/poolbuilder/internal/api/handlers"
	"github.com/benson/poolbuilder/internal/api/middleware"
	"github.com/benson/poolbuilder/internal/config"
	"github.com/benson/poolbuilder/internal/service"
	"github.com/benson/poolbuilder/internal/ws"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *ws.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.AllowedOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	submissionHandler := handlers.NewSubmissionHandler(services.Submissions)
	poolHandler := handlers.NewPoolHandler(services.Pool)
	adminHandler := handlers.NewAdminHandler(services.Submissions, services.Admin)
	wsHandler := handlers.NewWSHandler(hub, cfg.AllowedOrigin)

	r.Post("/submit", submissionHandler.Submit)
	r.Get("/submissions/{date}", submissionHandler.Get)
	r.Get("/daily", poolHandler.Daily)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", adminHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(services.Admin))
			r.Post("/feature", adminHandler.Feature)
		})
	})

	// Live submission-count feed
	r.Get("/ws", wsHandler.Handle)

	return r
}
