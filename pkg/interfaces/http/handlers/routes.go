package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// NewRouter wires the preview routes behind CORS for the given origins
func NewRouter(log *slog.Logger, provider DemoDataProvider, allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", Health())
	router.Get("/api/demo-data", GetDemoData(log, provider))
	router.Get("/api/demo-data/{collection}", GetCollection(log, provider))

	return router
}
