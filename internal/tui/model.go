// Package tui hosts the catalog browser in a bubbletea program. Every state
// transition goes through browser.Controller; the model only tracks focus,
// cursor position and the acknowledgement toast.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/iconshelf/internal/browser"
	"github.com/alexisbeaulieu97/iconshelf/internal/clipboard"
	"github.com/alexisbeaulieu97/iconshelf/internal/logger"
	"github.com/alexisbeaulieu97/iconshelf/internal/render"
)

// cardHeight is the number of terminal rows one grid card occupies.
const cardHeight = 4

// Model is the bubbletea model of the icon browser.
type Model struct {
	ctrl     *browser.Controller
	notifier *clipboard.Notifier
	log      *logger.Logger

	// Components
	search  textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// UI state
	view   render.View
	focus  Focus
	cursor int
	offset int

	// Toast state
	ack     *clipboard.Ack
	copyErr string

	width  int
	height int
}

// Options configures a Model.
type Options struct {
	Controller *browser.Controller
	Notifier   *clipboard.Notifier
	Logger     *logger.Logger
}

// NewModel creates the browser model. The catalog is loaded by Init.
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	input := textinput.New()
	input.Placeholder = "Search icons"
	input.Prompt = "/ "
	input.CharLimit = 128

	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = browser.New(browser.Options{Logger: opts.Logger})
	}

	return Model{
		ctrl:     ctrl,
		notifier: opts.Notifier,
		log:      opts.Logger,
		search:   input,
		spinner:  s,
		help:     help.New(),
		keys:     defaultKeyMap(),
		view:     ctrl.View(),
		focus:    FocusGrid,
		width:    80,
		height:   24,
	}
}

// Init starts the spinner and the one-shot catalog load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalogCmd(m.ctrl))
}

// Controller exposes the underlying controller.
func (m Model) Controller() *browser.Controller {
	return m.ctrl
}

// CurrentView is the last rendered catalog view.
func (m Model) CurrentView() render.View {
	return m.view
}

// Focus reports which area receives key presses.
func (m Model) Focus() Focus {
	return m.focus
}

// Cursor is the index of the selected card.
func (m Model) Cursor() int {
	return m.cursor
}

// Ack returns the visible copy acknowledgement.
func (m Model) Ack() (clipboard.Ack, bool) {
	if m.ack == nil {
		return clipboard.Ack{}, false
	}
	return *m.ack, true
}

// SelectedCard returns the card under the cursor.
func (m Model) SelectedCard() (render.Card, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Cards) {
		return render.Card{}, false
	}
	return m.view.Cards[m.cursor], true
}

func (m Model) columns() int {
	return render.Columns(m.width, gridCellWidth)
}

// visibleRows is how many card rows fit between the header and footer.
func (m Model) visibleRows() int {
	rows := (m.height - chromeHeight) / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// setView installs a new view and resets the cursor to the first card.
func (m *Model) setView(v render.View) {
	m.view = v
	m.cursor = 0
	m.offset = 0
}

// moveCursor shifts the selection by delta cards, clamped to the grid.
func (m *Model) moveCursor(delta int) {
	if len(m.view.Cards) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.view.Cards) {
		return
	}
	m.cursor = next
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	row := m.cursor / m.columns()
	rows := m.visibleRows()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+rows {
		m.offset = row - rows + 1
	}
}
