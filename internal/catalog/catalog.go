// Package catalog discovers which icons exist for each theme and holds the
// resolved, immutable result.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Theme selects one of the two icon presentation modes.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes lists every theme in tab order.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// ParseTheme converts user input into a Theme.
func ParseTheme(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected light or dark)", value)
	}
}

func (t Theme) String() string {
	return string(t)
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// IconID names one icon file within a theme, e.g. "openai-dark.webp".
type IconID string

func (id IconID) String() string {
	return string(id)
}

// IconPath is the server-relative location of an icon: "/<theme>/<id>".
func IconPath(theme Theme, id IconID) string {
	return "/" + string(theme) + "/" + string(id)
}

// Catalog maps each theme to its sorted, duplicate-free icon list. A Catalog
// is never modified after construction; a reload builds a new one.
type Catalog struct {
	icons map[Theme][]IconID
}

// New builds a Catalog, normalising each list: empty ids and duplicates are
// dropped and the remainder sorted by plain string order.
func New(lists map[Theme][]IconID) *Catalog {
	c := &Catalog{icons: make(map[Theme][]IconID, 2)}
	for _, theme := range Themes() {
		c.icons[theme] = normalize(lists[theme])
	}
	return c
}

// Empty returns a catalog with no icons in any theme.
func Empty() *Catalog {
	return New(nil)
}

// Icons returns a copy of the list for theme.
func (c *Catalog) Icons(theme Theme) []IconID {
	if c == nil {
		return []IconID{}
	}
	src := c.icons[theme]
	out := make([]IconID, len(src))
	copy(out, src)
	return out
}

// Len returns how many icons theme holds.
func (c *Catalog) Len(theme Theme) int {
	if c == nil {
		return 0
	}
	return len(c.icons[theme])
}

// Total counts icons across all themes.
func (c *Catalog) Total() int {
	total := 0
	for _, theme := range Themes() {
		total += c.Len(theme)
	}
	return total
}

func normalize(ids []IconID) []IconID {
	seen := make(map[IconID]struct{}, len(ids))
	out := make([]IconID, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
