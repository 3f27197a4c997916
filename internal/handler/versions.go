package handler

import (
	"log"
	"net/http"

	"github.com/brabenetz/archiv-index/internal/metrics"
	"github.com/brabenetz/archiv-index/internal/render"
)

// VersionsHandler serves the host document with its version list filled in.
type VersionsHandler struct {
	host     HostSource
	renderer *render.Renderer
	targetID string
}

// NewVersionsHandler creates a new VersionsHandler.
func NewVersionsHandler(host HostSource, r *render.Renderer, targetID string) *VersionsHandler {
	return &VersionsHandler{host: host, renderer: r, targetID: targetID}
}

// load builds a fresh page and fires its ready trigger. A failed listing
// fetch is not an error here: the renderer has logged it and the list keeps
// the current link.
func (h *VersionsHandler) load(r *http.Request) (*render.Page, error) {
	doc, err := h.host.Load()
	if err != nil {
		return nil, err
	}
	page, err := render.NewPage(doc, h.targetID, h.renderer)
	if err != nil {
		return nil, err
	}
	_, _ = page.Ready(r.Context())
	return page, nil
}

// Index serves GET /. HTMX requests get only the list fragment.
func (h *VersionsHandler) Index(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		h.Fragment(w, r)
		return
	}
	page, err := h.load(r)
	if err != nil {
		log.Printf("index: %v", err)
		renderError(w, http.StatusInternalServerError, "The version archive page could not be built.")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Document().Render(w); err != nil {
		log.Printf("index: write: %v", err)
		return
	}
	metrics.PagesServed.WithLabelValues("page").Inc()
}

// Fragment serves GET /versions: the filled list element alone.
func (h *VersionsHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	page, err := h.load(r)
	if err != nil {
		log.Printf("fragment: %v", err)
		http.Error(w, "version list unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.List().Render(w); err != nil {
		log.Printf("fragment: write: %v", err)
		return
	}
	metrics.PagesServed.WithLabelValues("fragment").Inc()
}
