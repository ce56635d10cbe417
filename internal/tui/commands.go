package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/iconshelf/internal/browser"
	"github.com/alexisbeaulieu97/iconshelf/internal/render"
)

// loadCatalogCmd resolves the catalog off the update loop.
func loadCatalogCmd(ctrl *browser.Controller) tea.Cmd {
	return func() tea.Msg {
		cat, err := ctrl.Fetch(context.Background())
		if err != nil {
			return CatalogFailedMsg{Err: err}
		}
		return CatalogLoadedMsg{Catalog: cat}
	}
}

// copyCmd activates a card. The controller's view state is not modified.
func copyCmd(ctrl *browser.Controller, card render.Card) tea.Cmd {
	return func() tea.Msg {
		ack, err := ctrl.Activate(context.Background(), card)
		if err != nil {
			return CopyFailedMsg{Path: card.Path, Err: err}
		}
		return CopiedMsg{Ack: ack}
	}
}
