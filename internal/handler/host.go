package handler

import (
	"bytes"
	"fmt"
	"os"

	"github.com/brabenetz/archiv-index/internal/dom"
)

// HostSource produces a fresh host document for every page load.
type HostSource interface {
	Load() (*dom.Document, error)
}

type templateHost struct {
	data IndexPage
}

// NewTemplateHost serves the embedded index page for repository.
func NewTemplateHost(repository, targetID string) HostSource {
	return &templateHost{data: IndexPage{
		BasePage:   newBasePage(repository + " documentation archive"),
		Repository: repository,
		TargetID:   targetID,
	}}
}

func (h *templateHost) Load() (*dom.Document, error) {
	body, err := execute("index.html", h.data)
	if err != nil {
		return nil, err
	}
	return dom.Parse(bytes.NewReader(body))
}

type fileHost struct {
	path string
}

// NewFileHost reads the host document from path on every load, so edits show
// up without a restart.
func NewFileHost(path string) HostSource {
	return &fileHost{path: path}
}

func (h *fileHost) Load() (*dom.Document, error) {
	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("open host document: %w", err)
	}
	defer func() { _ = f.Close() }()
	return dom.Parse(f)
}
