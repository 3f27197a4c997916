package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/brabenetz/archiv-index/internal/github"
	"github.com/brabenetz/archiv-index/internal/metrics"
	"github.com/brabenetz/archiv-index/internal/render"
)

type versionsAPIHandler struct {
	renderer *render.Renderer
	lister   render.Lister
}

// List returns the rendered version links.
// GET /api/v1/versions
//
// @Summary      List archived versions
// @Description  Returns the current link followed by one link per archived version directory, in listing order. A failed listing fetch still answers 200 with the current link and an error object.
// @Tags         Versions
// @Produce      json
// @Success      200  {object}  VersionListResponse
// @Router       /versions [get]
func (h *versionsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	var items render.Markup
	links, err := h.renderer.RenderVersionList(r.Context(), &items)

	resp := VersionListResponse{Versions: make([]VersionResponse, 0, len(links))}
	for i, l := range links {
		resp.Versions = append(resp.Versions, VersionResponse{Label: l.Label, Href: l.Href, HTML: items[i]})
	}
	if err != nil {
		resp.Error = &ErrorResponse{Error: "version listing unavailable", Code: "UPSTREAM_ERROR"}
	}
	writeJSON(w, http.StatusOK, resp)
	metrics.PagesServed.WithLabelValues("api").Inc()
}

// Entries returns the raw contents listing, all entry types included.
// GET /api/v1/entries
//
// @Summary      Raw contents listing
// @Description  Proxies the contents listing of the archive directory without filtering.
// @Tags         Versions
// @Produce      json
// @Success      200  {object}  EntryListResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /entries [get]
func (h *versionsAPIHandler) Entries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.lister.List(r.Context())
	if err != nil {
		log.Printf("api: list entries: %v", err)
		if github.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "archive directory not found", "NOT_FOUND")
			return
		}
		var ge *github.Error
		if errors.As(err, &ge) && ge.Kind == github.KindDecode {
			writeError(w, http.StatusBadGateway, "unexpected listing format", "UPSTREAM_DECODE_ERROR")
			return
		}
		writeError(w, http.StatusBadGateway, "version listing unavailable", "UPSTREAM_ERROR")
		return
	}

	resp := EntryListResponse{Entries: make([]EntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, EntryResponse{Name: e.Name, Type: e.Type})
	}
	writeJSON(w, http.StatusOK, resp)
}
