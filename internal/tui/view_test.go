package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestView_Loading(t *testing.T) {
	f := newFixture(t, stubResolver{cat: fruitCatalog()})

	view := f.model.View()
	assert.Contains(t, view, "iconshelf")
	assert.Contains(t, view, "Loading icons")
	assert.Contains(t, view, "1 Light")
	assert.Contains(t, view, "2 Dark")
}

func TestView_Grid(t *testing.T) {
	f := newFixture(t, stubResolver{cat: fruitCatalog()})
	m := loaded(t, f)

	view := m.View()
	assert.Contains(t, view, "5 icons")
	assert.Contains(t, view, "5/5")
	assert.Contains(t, view, "apple")
	assert.Contains(t, view, "elder")
	assert.Contains(t, view, "/light/")
	assert.NotContains(t, view, "apple.webp", "labels drop the extension")
	assert.NotContains(t, view, "No matching icons")
}

func TestView_FilteredSummaryCountsVisibleIcons(t *testing.T) {
	f := newFixture(t, stubResolver{cat: fruitCatalog()})
	m := loaded(t, f)

	m = send(t, m, keyRunes("/"))
	m = send(t, m, keyRunes("a"))

	view := m.View()
	// apple, banana, date
	assert.Contains(t, view, "3 icons")
	assert.Contains(t, view, "3/5")

	// the query matches the stored id, extension included
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = send(t, m, keyRunes("e"))
	view = m.View()
	assert.Contains(t, view, "5 icons")
	assert.Contains(t, view, "5/5")
}

func TestView_EmptyResult(t *testing.T) {
	f := newFixture(t, stubResolver{cat: fruitCatalog()})
	m := loaded(t, f)

	m = send(t, m, keyRunes("/"))
	m = send(t, m, keyRunes("zzz"))

	view := m.View()
	assert.Contains(t, view, "No matching icons")
	assert.Contains(t, view, "0 icons")
	assert.NotContains(t, view, "Failed to load icons")
}

func TestView_Failure(t *testing.T) {
	f := newFixture(t, stubResolver{err: errors.New("listing unavailable")})
	m := loaded(t, f)

	view := m.View()
	assert.Contains(t, view, "Failed to load icons")
	assert.Contains(t, view, "listing unavailable")
	assert.NotContains(t, view, "No matching icons")
	assert.NotContains(t, view, "Search icons")
}

func TestView_ScrollIndicators(t *testing.T) {
	f := newFixture(t, stubResolver{cat: fruitCatalog()})
	// one card per row and room for a single row
	m := send(t, f.model, tea.WindowSizeMsg{Width: 30, Height: 14})
	m = m.runCmd(t, loadCatalogCmd(m.ctrl))
	assert.Equal(t, 1, m.visibleRows())

	view := m.View()
	assert.Contains(t, view, "More below")
	assert.NotContains(t, view, "More above")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.offset)

	view = m.View()
	assert.Contains(t, view, "More above")
	assert.Contains(t, view, "cherry")
	assert.NotContains(t, view, "apple")
}
