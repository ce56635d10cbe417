// Package viewstate holds the browsing state of the icon catalog: the active
// theme, the search query and the resolved catalog. The visible icon list is
// always derived from these, never stored.
package viewstate

import (
	"strings"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
)

// State is owned by a single writer. It performs no locking.
type State struct {
	theme   catalog.Theme
	query   string
	catalog *catalog.Catalog
}

// New creates a State showing theme over c. An invalid theme falls back to light.
func New(c *catalog.Catalog, theme catalog.Theme) *State {
	if !theme.Valid() {
		theme = catalog.ThemeLight
	}
	if c == nil {
		c = catalog.Empty()
	}
	return &State{theme: theme, catalog: c}
}

// Theme returns the active theme.
func (s *State) Theme() catalog.Theme {
	return s.theme
}

// Query returns the filter text exactly as it was set.
func (s *State) Query() string {
	return s.query
}

// Catalog returns the catalog being browsed.
func (s *State) Catalog() *catalog.Catalog {
	return s.catalog
}

// SetTheme switches the active theme. Switching always clears the query.
func (s *State) SetTheme(theme catalog.Theme) {
	if !theme.Valid() {
		return
	}
	s.theme = theme
	s.query = ""
}

// SetQuery replaces the filter text verbatim.
func (s *State) SetQuery(text string) {
	s.query = text
}

// SetCatalog replaces the catalog wholesale, as after a reload.
func (s *State) SetCatalog(c *catalog.Catalog) {
	if c == nil {
		c = catalog.Empty()
	}
	s.catalog = c
}

// VisibleIcons is the active theme's list filtered by the current query.
func (s *State) VisibleIcons() []catalog.IconID {
	return Filter(s.catalog.Icons(s.theme), s.query)
}

// Filter keeps the ids whose lowercase form contains the lowercase query,
// preserving order. A blank query keeps everything.
func Filter(ids []catalog.IconID, query string) []catalog.IconID {
	if strings.TrimSpace(query) == "" {
		out := make([]catalog.IconID, len(ids))
		copy(out, ids)
		return out
	}

	needle := strings.ToLower(query)
	out := make([]catalog.IconID, 0, len(ids))
	for _, id := range ids {
		if strings.Contains(strings.ToLower(string(id)), needle) {
			out = append(out, id)
		}
	}
	return out
}
