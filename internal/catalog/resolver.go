package catalog

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/iconshelf/internal/logger"
)

// Resolver discovers the icon catalog. Implementations either return a
// complete Catalog or an error; they never return a partially populated one.
type Resolver interface {
	// Name identifies the discovery strategy in logs and errors.
	Name() string
	// Resolve produces the catalog for every theme.
	Resolve(ctx context.Context) (*Catalog, error)
	// ResolveTheme produces the sorted icon list for a single theme.
	ResolveTheme(ctx context.Context, theme Theme) ([]IconID, error)
}

// Source names a discovery strategy.
type Source string

const (
	SourceStatic Source = "static"
	SourceHTTP   Source = "http"
)

func logResolved(log *logger.Logger, name string, c *Catalog, started time.Time) {
	log.WithFields(map[string]any{
		"source":      name,
		"light":       c.Len(ThemeLight),
		"dark":        c.Len(ThemeDark),
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("catalog resolved")
}
