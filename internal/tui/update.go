package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/iconshelf/internal/browser"
	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
	"github.com/alexisbeaulieu97/iconshelf/internal/clipboard"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = msg.Width - 4
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if m.ctrl.Status() != browser.LoadPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Catalog messages
	case CatalogLoadedMsg:
		m.ctrl.Loaded(msg.Catalog)
		m.setView(m.ctrl.View())
		m.log.With("icons", msg.Catalog.Total()).Info("catalog loaded")
		return m, nil

	case CatalogFailedMsg:
		_ = m.ctrl.Fail(msg.Err)
		m.setView(m.ctrl.View())
		m.focus = FocusGrid
		m.search.Blur()
		return m, nil

	// Clipboard messages
	case CopiedMsg:
		m.copyErr = ""
		m.showAck(msg.Ack)
		return m, nil

	case CopyFailedMsg:
		m.copyErr = msg.Err.Error()
		return m, nil

	case AckChangedMsg:
		if m.notifier == nil {
			return m, nil
		}
		if ack, ok := m.notifier.Current(); ok {
			m.ack = &ack
		} else {
			m.ack = nil
		}
		return m, nil
	}

	return m, nil
}

// showAck displays the acknowledgement of a finished copy. Copies run
// concurrently, so their results can arrive out of order: the notifier's
// current ack wins, and without a notifier an older generation never
// replaces a newer one.
func (m *Model) showAck(ack clipboard.Ack) {
	if m.notifier != nil {
		if current, ok := m.notifier.Current(); ok {
			m.ack = &current
		} else {
			m.ack = nil
		}
		return
	}
	if m.ack != nil && ack.Generation < m.ack.Generation {
		return
	}
	m.ack = &ack
}

// handleKeyPress routes keys by focus. ctrl+c always quits.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// a failed load is terminal; only quitting and help remain
	if m.ctrl.Status() == browser.LoadFailed {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.NextTab) {
		return m.selectTheme(nextTheme(m.ctrl.State().Theme()))
	}

	if m.focus == FocusSearch {
		return m.handleSearchKeys(msg)
	}
	return m.handleGridKeys(msg)
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Blur), key.Matches(msg, m.keys.Copy):
		m.focus = FocusGrid
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		if msg.Type != tea.KeyRunes {
			m.focus = FocusGrid
			m.search.Blur()
			return m.handleGridKeys(msg)
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.setView(m.ctrl.EditQuery(after))
	}
	return m, cmd
}

func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.copyErr = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.focus = FocusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Blur):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.setView(m.ctrl.EditQuery(""))
		}
		return m, nil

	case key.Matches(msg, m.keys.Light):
		return m.selectTheme(catalog.ThemeLight)

	case key.Matches(msg, m.keys.Dark):
		return m.selectTheme(catalog.ThemeDark)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		card, ok := m.SelectedCard()
		if !ok {
			return m, nil
		}
		return m, copyCmd(m.ctrl, card)
	}

	return m, nil
}

// selectTheme switches tabs. Switching clears the search text.
func (m Model) selectTheme(theme catalog.Theme) (tea.Model, tea.Cmd) {
	m.search.SetValue("")
	m.setView(m.ctrl.SelectTheme(theme))
	return m, nil
}

func nextTheme(current catalog.Theme) catalog.Theme {
	themes := catalog.Themes()
	for i, theme := range themes {
		if theme == current {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
