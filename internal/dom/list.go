package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// List is a container element in a Document. It only ever gains children.
type List struct {
	node *html.Node
}

// Append parses markup in the context of the list element and appends the
// resulting nodes after any existing children.
func (l *List) Append(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), l.node)
	if err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}
	for _, n := range nodes {
		l.node.AppendChild(n)
	}
	return nil
}

// Items returns the text of each <li> child in document order.
func (l *List) Items() []string {
	var out []string
	for c := l.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			out = append(out, text(c))
		}
	}
	return out
}

// Hrefs returns the href of the first anchor inside each <li> child.
func (l *List) Hrefs() []string {
	var out []string
	for c := l.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		href := ""
		for a := c.FirstChild; a != nil; a = a.NextSibling {
			if a.Type == html.ElementNode && a.Data == "a" {
				href = attr(a, "href")
				break
			}
		}
		out = append(out, href)
	}
	return out
}

// Render writes the list element and its children.
func (l *List) Render(w io.Writer) error {
	return html.Render(w, l.node)
}
