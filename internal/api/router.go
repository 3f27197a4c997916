package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brabenetz/archiv-index/internal/render"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Renderer *render.Renderer
	Lister   render.Lister
}

// NewAPIRouter creates a chi sub-router for /api/v1.
// All routes return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)

	h := &versionsAPIHandler{renderer: deps.Renderer, lister: deps.Lister}
	r.Get("/versions", h.List)
	r.Get("/entries", h.Entries)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
