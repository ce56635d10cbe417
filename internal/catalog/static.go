package catalog

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/alexisbeaulieu97/iconshelf/internal/logger"
	apperrors "github.com/alexisbeaulieu97/iconshelf/pkg/errors"
)

// StaticResolver enumerates icon files already present on a filesystem laid
// out as <theme>/<icon>. It never suspends and only fails on I/O errors other
// than a missing theme directory.
type StaticResolver struct {
	fsys   fs.FS
	naming Naming
	log    *logger.Logger
}

// NewStaticResolver creates a resolver rooted at fsys.
func NewStaticResolver(fsys fs.FS, naming Naming, log *logger.Logger) *StaticResolver {
	return &StaticResolver{fsys: fsys, naming: naming.withDefaults(), log: log}
}

// Name implements Resolver.
func (r *StaticResolver) Name() string {
	return string(SourceStatic)
}

// Resolve implements Resolver.
func (r *StaticResolver) Resolve(ctx context.Context) (*Catalog, error) {
	started := time.Now()
	lists := make(map[Theme][]IconID, 2)
	for _, theme := range Themes() {
		ids, err := r.ResolveTheme(ctx, theme)
		if err != nil {
			return nil, err
		}
		lists[theme] = ids
	}

	c := New(lists)
	logResolved(r.log, r.Name(), c, started)
	return c, nil
}

// ResolveTheme implements Resolver.
func (r *StaticResolver) ResolveTheme(ctx context.Context, theme Theme) ([]IconID, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewResolveError(r.Name(), theme.String(), err)
	}

	entries, err := fs.ReadDir(r.fsys, theme.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.With("theme", theme.String()).Warn("theme directory not found, treating as empty")
			return []IconID{}, nil
		}
		return nil, apperrors.NewResolveError(r.Name(), theme.String(), err)
	}

	ids := make([]IconID, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !r.naming.IsAsset(entry.Name()) {
			continue
		}
		ids = append(ids, IconID(entry.Name()))
	}
	return normalize(ids), nil
}

var _ Resolver = (*StaticResolver)(nil)
