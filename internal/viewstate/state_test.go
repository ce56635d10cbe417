package viewstate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
)

func fruitCatalog() *catalog.Catalog {
	return catalog.New(map[catalog.Theme][]catalog.IconID{
		catalog.ThemeLight: {"apple.webp", "banana.webp", "cherry.webp"},
		catalog.ThemeDark:  {"apple-dark.webp", "banana-dark.webp", "cherry-dark.webp"},
	})
}

func TestVisibleIconsFiltersBySubstring(t *testing.T) {
	t.Parallel()

	s := New(fruitCatalog(), catalog.ThemeLight)
	s.SetQuery("an")

	assert.Equal(t, []catalog.IconID{"banana.webp"}, s.VisibleIcons())
}

func TestVisibleIconsEmptyQueryShowsAll(t *testing.T) {
	t.Parallel()

	s := New(fruitCatalog(), catalog.ThemeLight)
	assert.Equal(t, fruitCatalog().Icons(catalog.ThemeLight), s.VisibleIcons())

	s.SetQuery("   ")
	assert.Equal(t, fruitCatalog().Icons(catalog.ThemeLight), s.VisibleIcons())
	assert.Equal(t, "   ", s.Query(), "query is stored verbatim")
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := catalog.New(map[catalog.Theme][]catalog.IconID{
		catalog.ThemeLight: {"Icon-A.webp", "b.webp", "my-icon.webp", "ICONS.webp"},
	})
	upper := New(c, catalog.ThemeLight)
	upper.SetQuery("ICON")
	lower := New(c, catalog.ThemeLight)
	lower.SetQuery("icon")

	assert.Equal(t, lower.VisibleIcons(), upper.VisibleIcons())
	assert.Equal(t, []catalog.IconID{"ICONS.webp", "Icon-A.webp", "my-icon.webp"}, upper.VisibleIcons())
}

func TestFilterMatchesExtensionAndMarker(t *testing.T) {
	t.Parallel()

	s := New(fruitCatalog(), catalog.ThemeDark)
	s.SetQuery("-dark.web")
	assert.Len(t, s.VisibleIcons(), 3)

	s.SetQuery("WEBP")
	assert.Len(t, s.VisibleIcons(), 3)
}

func TestSetThemeResetsQuery(t *testing.T) {
	t.Parallel()

	for _, query := range []string{"", "an", "zzz", "  spaced "} {
		s := New(fruitCatalog(), catalog.ThemeLight)
		s.SetQuery(query)
		s.SetTheme(catalog.ThemeDark)

		assert.Equal(t, catalog.ThemeDark, s.Theme())
		assert.Equal(t, "", s.Query(), "query %q must be cleared", query)
		assert.Len(t, s.VisibleIcons(), 3)
	}
}

func TestSetThemeSameThemeStillClearsQuery(t *testing.T) {
	t.Parallel()

	s := New(fruitCatalog(), catalog.ThemeLight)
	s.SetQuery("apple")
	s.SetTheme(catalog.ThemeLight)
	assert.Equal(t, "", s.Query())
}

func TestSetThemeIgnoresInvalidTheme(t *testing.T) {
	t.Parallel()

	s := New(fruitCatalog(), catalog.ThemeDark)
	s.SetQuery("apple")
	s.SetTheme(catalog.Theme("sepia"))

	assert.Equal(t, catalog.ThemeDark, s.Theme())
	assert.Equal(t, "apple", s.Query())
}

func TestNewDefaultsToLightAndEmptyCatalog(t *testing.T) {
	t.Parallel()

	s := New(nil, "")
	assert.Equal(t, catalog.ThemeLight, s.Theme())
	assert.Empty(t, s.VisibleIcons())
}

func TestEmptyCatalogYieldsNoVisibleIcons(t *testing.T) {
	t.Parallel()

	s := New(catalog.Empty(), catalog.ThemeLight)
	s.SetQuery("a")
	assert.Empty(t, s.VisibleIcons())
}

func TestSetCatalogReplacesWholesale(t *testing.T) {
	t.Parallel()

	s := New(fruitCatalog(), catalog.ThemeLight)
	s.SetCatalog(catalog.New(map[catalog.Theme][]catalog.IconID{
		catalog.ThemeLight: {"zebra.webp"},
	}))
	assert.Equal(t, []catalog.IconID{"zebra.webp"}, s.VisibleIcons())

	s.SetCatalog(nil)
	assert.Empty(t, s.VisibleIcons())
}

func TestVisibleIconsIsOrderedSubsequence(t *testing.T) {
	t.Parallel()

	ids := make([]catalog.IconID, 0, 60)
	for i := 0; i < 60; i++ {
		ids = append(ids, catalog.IconID(fmt.Sprintf("icon-%02d-%c.webp", i, 'a'+rune(i%26))))
	}
	c := catalog.New(map[catalog.Theme][]catalog.IconID{catalog.ThemeLight: ids})
	full := c.Icons(catalog.ThemeLight)

	for _, query := range []string{"", "1", "-a", "ICON-0", "webp", "nothing", "2-c"} {
		s := New(c, catalog.ThemeLight)
		s.SetQuery(query)
		visible := s.VisibleIcons()

		j := 0
		for _, id := range visible {
			for j < len(full) && full[j] != id {
				j++
			}
			require.Less(t, j, len(full), "query %q produced %q out of order", query, id)
			j++
		}
	}
}
