package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/brabenetz/archiv-index/internal/build"
	"github.com/brabenetz/archiv-index/web"
)

// BasePage carries layout-level data available to every template.
type BasePage struct {
	Title   string
	Version string
}

func newBasePage(title string) BasePage {
	return BasePage{Title: title, Version: build.Version}
}

// IndexPage is the template data for the embedded host document.
type IndexPage struct {
	BasePage
	Repository string
	TargetID   string
}

type errorPage struct {
	BasePage
	Message string
}

// pageCache maps a page file name (e.g. "index.html") to a compiled template
// set containing base.html plus that one page file, so {{define "content"}}
// blocks don't collide.
var pageCache map[string]*template.Template

func init() {
	pageCache = make(map[string]*template.Template)
	err := fs.WalkDir(web.TemplateFS, "templates/pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return e
		}
		t, err := template.New("").ParseFS(web.TemplateFS, "templates/base.html", p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		pageCache[filepath.Base(p)] = t
		return nil
	})
	if err != nil {
		panic("build page cache: " + err.Error())
	}
}

// isHTMX returns true when the request was sent by HTMX.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// execute runs the base layout with the named page into a buffer.
func execute(tmpl string, data any) ([]byte, error) {
	t, ok := pageCache[tmpl]
	if !ok {
		return nil, fmt.Errorf("template not found: %s", tmpl)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", tmpl, err)
	}
	return buf.Bytes(), nil
}

// renderError writes the error page with the given status.
func renderError(w http.ResponseWriter, status int, message string) {
	body, err := execute("error.html", errorPage{BasePage: newBasePage("Error"), Message: message})
	if err != nil {
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
