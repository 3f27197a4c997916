// Package versions models the archived documentation versions listed by the
// repository contents API and the links rendered for them.
package versions

import (
	"iter"
	"slices"
)

// Entry types reported by the contents API.
const (
	TypeDir       = "dir"
	TypeFile      = "file"
	TypeSymlink   = "symlink"
	TypeSubmodule = "submodule"
)

// Current is the label of the static link that always leads the list.
const Current = "current"

// ListingEntry is one item of a remote directory listing.
type ListingEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// IsDir reports whether the entry is a directory.
func (e ListingEntry) IsDir() bool { return e.Type == TypeDir }

// VersionLink is a rendered link to a documentation version's index page.
type VersionLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// NewVersionLink returns the link for label.
func NewVersionLink(label string) VersionLink {
	return VersionLink{Label: label, Href: label + "/index.html"}
}

// CurrentLink returns the static link to the current documentation.
func CurrentLink() VersionLink { return NewVersionLink(Current) }

// Dirs yields the directory entries of entries in their original order.
// Other entry types are skipped.
func Dirs(entries iter.Seq[ListingEntry]) iter.Seq[ListingEntry] {
	return func(yield func(ListingEntry) bool) {
		for e := range entries {
			if !e.IsDir() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Links returns the full version list for a listing: the current link first,
// then one link per directory entry in response order.
func Links(entries []ListingEntry) []VersionLink {
	out := []VersionLink{CurrentLink()}
	for e := range Dirs(slices.Values(entries)) {
		out = append(out, NewVersionLink(e.Name))
	}
	return out
}
