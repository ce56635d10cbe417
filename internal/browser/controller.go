// Package browser binds user actions to the catalog view state: choosing a
// theme tab, editing the search text and activating an icon card.
package browser

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
	"github.com/alexisbeaulieu97/iconshelf/internal/clipboard"
	"github.com/alexisbeaulieu97/iconshelf/internal/logger"
	"github.com/alexisbeaulieu97/iconshelf/internal/render"
	"github.com/alexisbeaulieu97/iconshelf/internal/viewstate"
)

// ErrNotLoaded is returned when a card is activated before the catalog exists.
var ErrNotLoaded = errors.New("catalog not loaded")

// ErrNoResolver is returned by Load when no resolver was configured.
var ErrNoResolver = errors.New("no catalog resolver configured")

// Copier performs the copy side effect for a card.
type Copier interface {
	Copy(ctx context.Context, path string) (clipboard.Ack, error)
}

// LoadStatus tracks the one-shot catalog load.
type LoadStatus int

const (
	LoadPending LoadStatus = iota
	LoadReady
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Tab is one theme selector. At most one tab is Active.
type Tab struct {
	Theme  catalog.Theme
	Label  string
	Active bool
}

// Controller is the single writer of the view state.
type Controller struct {
	state    *viewstate.State
	resolver catalog.Resolver
	renderer render.Renderer
	copier   Copier
	log      *logger.Logger

	status  LoadStatus
	loadErr error
}

// Options configures a Controller.
type Options struct {
	Resolver     catalog.Resolver
	Copier       Copier
	Naming       catalog.Naming
	DefaultTheme catalog.Theme
	Logger       *logger.Logger
}

// New creates a Controller with an empty catalog awaiting Load.
func New(opts Options) *Controller {
	return &Controller{
		state:    viewstate.New(catalog.Empty(), opts.DefaultTheme),
		resolver: opts.Resolver,
		renderer: render.New(opts.Naming),
		copier:   opts.Copier,
		log:      opts.Logger,
	}
}

// Load runs the resolver once. On failure the catalog stays empty and the
// controller reports the terminal failed state.
func (c *Controller) Load(ctx context.Context) error {
	cat, err := c.Fetch(ctx)
	if err != nil {
		return c.Fail(err)
	}
	c.Loaded(cat)
	return nil
}

// Fetch runs the resolver without touching the view state. Callers that
// resolve off the UI loop hand the result to Loaded or Fail.
func (c *Controller) Fetch(ctx context.Context) (*catalog.Catalog, error) {
	if c.resolver == nil {
		return nil, ErrNoResolver
	}
	return c.resolver.Resolve(ctx)
}

// Loaded installs a resolved catalog.
func (c *Controller) Loaded(cat *catalog.Catalog) {
	c.state.SetCatalog(cat)
	c.status = LoadReady
	c.loadErr = nil
}

// Fail records a catalog load failure and returns err.
func (c *Controller) Fail(err error) error {
	c.state.SetCatalog(catalog.Empty())
	c.status = LoadFailed
	c.loadErr = err
	c.log.Error(err, "catalog unavailable")
	return err
}

// Status reports the load state.
func (c *Controller) Status() LoadStatus {
	return c.status
}

// LoadError is the error of a failed load.
func (c *Controller) LoadError() error {
	return c.loadErr
}

// State exposes the view state for reading.
func (c *Controller) State() *viewstate.State {
	return c.state
}

// SelectTheme activates a theme tab. The query is cleared.
func (c *Controller) SelectTheme(theme catalog.Theme) render.View {
	c.state.SetTheme(theme)
	c.log.With("theme", c.state.Theme().String()).Debug("theme selected")
	return c.View()
}

// EditQuery applies search text as typed.
func (c *Controller) EditQuery(text string) render.View {
	c.state.SetQuery(text)
	return c.View()
}

// Activate copies the card's path. The view state is not touched.
func (c *Controller) Activate(ctx context.Context, card render.Card) (clipboard.Ack, error) {
	if c.status != LoadReady {
		return clipboard.Ack{}, ErrNotLoaded
	}
	if c.copier == nil {
		return clipboard.Ack{}, errors.New("no clipboard configured")
	}
	return c.copier.Copy(ctx, card.Action.Path)
}

// View renders the current state.
func (c *Controller) View() render.View {
	if c.status == LoadFailed {
		return render.RenderFailure(c.state.Theme(), c.loadErr)
	}
	return c.renderer.Render(c.state.VisibleIcons(), c.state.Theme())
}

// Tabs lists the theme tabs with the active one marked.
func (c *Controller) Tabs() []Tab {
	themes := catalog.Themes()
	tabs := make([]Tab, len(themes))
	for i, theme := range themes {
		tabs[i] = Tab{
			Theme:  theme,
			Label:  tabLabel(theme),
			Active: theme == c.state.Theme(),
		}
	}
	return tabs
}

func tabLabel(theme catalog.Theme) string {
	switch theme {
	case catalog.ThemeDark:
		return "Dark"
	default:
		return "Light"
	}
}
