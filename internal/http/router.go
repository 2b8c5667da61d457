package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"notestash/internal/handlers"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Catalog handlers.Catalog
}

// NewRouter creates the read-only API router over a loaded catalog.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	notesHandler := handlers.NewNotesHandler(deps.Catalog)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.Catalog))
		r.Get("/notes", notesHandler.List)
		r.Get("/notes/{id}", notesHandler.Get)
		r.Method(http.MethodGet, "/notes/{id}/view", handlers.NewNoteViewHandler(deps.Catalog))
		r.Method(http.MethodGet, "/tags", handlers.NewTagsHandler(deps.Catalog))
		r.Method(http.MethodGet, "/export", handlers.NewExportHandler(deps.Catalog))
	})

	return r
}
