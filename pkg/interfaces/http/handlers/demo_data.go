package handlers

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/vsinha/mockgen/pkg/application/dto"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// DemoDataProvider supplies the current demo document
type DemoDataProvider interface {
	DemoData(ctx context.Context) (*dto.MockData, error)
}

const requestTimeout = 5 * time.Second

// GetDemoData returns the whole demo document
func GetDemoData(log *slog.Logger, provider DemoDataProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.GetDemoData"

		doc, ok := load(w, r, log.With(slog.String("op", op)), provider)
		if !ok {
			return
		}

		render.JSON(w, r, doc)
	}
}

// GetCollection returns one top-level collection of the demo document
func GetCollection(log *slog.Logger, provider DemoDataProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.GetCollection"
		log := log.With(slog.String("op", op))

		name := chi.URLParam(r, "collection")

		doc, ok := load(w, r, log, provider)
		if !ok {
			return
		}

		collection, found := doc.Collection(name)
		if !found {
			log.Warn("Unknown collection", slog.String("collection", name))
			renderError(w, r, http.StatusNotFound, "Unknown collection")
			return
		}

		render.JSON(w, r, collection)
	}
}

// Health reports liveness
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}

func load(w http.ResponseWriter, r *http.Request, log *slog.Logger, provider DemoDataProvider) (*dto.MockData, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	doc, err := provider.DemoData(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("Demo data not generated yet", slog.String("error", err.Error()))
			renderError(w, r, http.StatusNotFound, "Demo data not generated yet")
			return nil, false
		}

		log.Error("Failed to load demo data", slog.String("error", err.Error()))
		renderError(w, r, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	return doc, true
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Status: status, Error: msg})
}
