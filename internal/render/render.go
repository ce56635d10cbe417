// Package render turns a visible icon list into a display model. Rendering is
// a pure function: the same inputs always produce the same View.
package render

import (
	"fmt"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
)

const (
	EmptyMessage   = "No matching icons"
	FailureMessage = "Failed to load icons"
)

// CopyAction is the activation target of a card: copying Path.
type CopyAction struct {
	Path string
}

// Card describes one icon in the grid.
type Card struct {
	ID     catalog.IconID
	Path   string
	Label  string
	Dir    string
	Action CopyAction
}

// View is the rendered state of the catalog browser. Exactly one of Failed,
// Empty or a non-empty Cards slice describes the body.
type View struct {
	Theme   catalog.Theme
	Cards   []Card
	Empty   bool
	Failed  bool
	Message string
	Detail  string
	Summary string
}

// Count is the number of visible icons.
func (v View) Count() int {
	return len(v.Cards)
}

// Renderer builds Views using a naming convention for labels.
type Renderer struct {
	naming catalog.Naming
}

// New returns a Renderer for naming.
func New(naming catalog.Naming) Renderer {
	return Renderer{naming: naming}
}

// Render builds the view for visible icons under theme.
func (r Renderer) Render(visible []catalog.IconID, theme catalog.Theme) View {
	if len(visible) == 0 {
		return View{
			Theme:   theme,
			Empty:   true,
			Message: EmptyMessage,
			Summary: Summary(0),
		}
	}

	dir := "/" + theme.String() + "/"
	cards := make([]Card, len(visible))
	for i, id := range visible {
		path := catalog.IconPath(theme, id)
		cards[i] = Card{
			ID:     id,
			Path:   path,
			Label:  r.naming.Label(id),
			Dir:    dir,
			Action: CopyAction{Path: path},
		}
	}

	return View{
		Theme:   theme,
		Cards:   cards,
		Summary: Summary(len(cards)),
	}
}

// Render uses the default naming convention.
func Render(visible []catalog.IconID, theme catalog.Theme) View {
	return New(catalog.DefaultNaming()).Render(visible, theme)
}

// RenderFailure is the terminal display shown when the catalog could not be
// loaded. It never carries cards.
func RenderFailure(theme catalog.Theme, err error) View {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return View{
		Theme:   theme,
		Failed:  true,
		Message: FailureMessage,
		Detail:  detail,
	}
}

// Summary is the count line shown above the grid.
func Summary(n int) string {
	if n == 1 {
		return "1 icon"
	}
	return fmt.Sprintf("%d icons", n)
}
