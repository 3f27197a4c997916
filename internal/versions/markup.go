package versions

// BuildListItem returns the list-item markup for a version label.
// The label is embedded as-is; callers pass directory names only.
func BuildListItem(label string) string {
	return `<li><a href="` + label + `/index.html">` + label + `</a></li>`
}

// ListItem returns the markup for the link.
func (l VersionLink) ListItem() string { return BuildListItem(l.Label) }
