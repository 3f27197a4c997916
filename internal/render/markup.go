package render

// Markup is a Target that keeps the appended items in memory.
type Markup []string

// Append records markup.
func (m *Markup) Append(markup string) error {
	*m = append(*m, markup)
	return nil
}
