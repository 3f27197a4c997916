package render

import (
	"context"
	"fmt"
	"sync"

	"github.com/brabenetz/archiv-index/internal/dom"
	"github.com/brabenetz/archiv-index/internal/versions"
)

// DefaultTargetID is the id of the list element in the host document.
const DefaultTargetID = "versionLinks"

// Page binds a host document to a renderer. Ready is its page-ready trigger
// and runs the render at most once.
type Page struct {
	doc      *dom.Document
	list     *dom.List
	renderer *Renderer

	once  sync.Once
	links []versions.VersionLink
	err   error
}

// NewPage locates the target list in doc.
func NewPage(doc *dom.Document, targetID string, r *Renderer) (*Page, error) {
	list, err := doc.List(targetID)
	if err != nil {
		return nil, fmt.Errorf("host document: %w", err)
	}
	return &Page{doc: doc, list: list, renderer: r}, nil
}

// Ready fires the render on the first call. Later calls return the first
// call's result without touching the document.
func (p *Page) Ready(ctx context.Context) ([]versions.VersionLink, error) {
	p.once.Do(func() {
		p.links, p.err = p.renderer.RenderVersionList(ctx, p.list)
	})
	return p.links, p.err
}

// Document returns the host document.
func (p *Page) Document() *dom.Document { return p.doc }

// List returns the target list element.
func (p *Page) List() *dom.List { return p.list }
