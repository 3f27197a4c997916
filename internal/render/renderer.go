// Package render fills a host document's version list from the archive listing.
package render

import (
	"context"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/brabenetz/archiv-index/internal/metrics"
	"github.com/brabenetz/archiv-index/internal/versions"
)

// Lister fetches the remote directory listing.
type Lister interface {
	List(ctx context.Context) ([]versions.ListingEntry, error)
}

// Target is the list element that receives rendered items.
type Target interface {
	Append(markup string) error
}

// Renderer is the VersionListRenderer.
type Renderer struct {
	lister Lister
}

// NewRenderer creates a Renderer backed by lister.
func NewRenderer(l Lister) *Renderer {
	return &Renderer{lister: l}
}

// RenderVersionList appends the current link to target, then fetches the
// listing and appends one item per directory entry in response order.
//
// A failed fetch is logged and returned wrapped; target keeps the current
// link and the returned links hold it alone. If appending the current link
// fails, nothing is fetched.
func (r *Renderer) RenderVersionList(ctx context.Context, target Target) ([]versions.VersionLink, error) {
	id := uuid.NewString()
	current := versions.CurrentLink()
	if err := target.Append(current.ListItem()); err != nil {
		return nil, fmt.Errorf("append %s: %w", current.Label, err)
	}
	links := []versions.VersionLink{current}

	start := time.Now()
	entries, err := r.lister.List(ctx)
	metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FetchesTotal.WithLabelValues("error").Inc()
		log.Printf("render %s: list versions: %v", id, err)
		return links, fmt.Errorf("list versions: %w", err)
	}
	metrics.FetchesTotal.WithLabelValues("ok").Inc()

	for e := range versions.Dirs(slices.Values(entries)) {
		link := versions.NewVersionLink(e.Name)
		if err := target.Append(link.ListItem()); err != nil {
			return links, fmt.Errorf("append %s: %w", link.Label, err)
		}
		links = append(links, link)
	}
	metrics.LinksRendered.Add(float64(len(links) - 1))
	log.Printf("render %s: %d entries, %d versions", id, len(entries), len(links)-1)
	return links, nil
}
