// Package assets fetches the icon package repository and copies its themed
// asset directories into the directory the resolver and server read from.
package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
	"github.com/alexisbeaulieu97/iconshelf/internal/logger"
)

// SourceDirName is the clone location inside Dest when CacheDir is unset.
const SourceDirName = ".source"

// Options configures a Syncer.
type Options struct {
	URL    string
	Branch string
	Depth  int
	// Subdir is the directory inside the repository holding light/ and dark/.
	Subdir   string
	Dest     string
	CacheDir string
	Naming   catalog.Naming
	Logger   *logger.Logger
}

// Result reports what a sync did.
type Result struct {
	Cloned    bool
	Updated   bool
	Head      string
	Copied    map[catalog.Theme]int
	Unchanged map[catalog.Theme]int
	Missing   []catalog.Theme
}

// Total is the number of assets present in Dest after the sync.
func (r *Result) Total() int {
	n := 0
	for _, theme := range catalog.Themes() {
		n += r.Copied[theme] + r.Unchanged[theme]
	}
	return n
}

// Syncer clones or updates the icon repository and installs its assets.
type Syncer struct {
	opts Options
}

// NewSyncer validates opts and returns a Syncer.
func NewSyncer(opts Options) (*Syncer, error) {
	if opts.URL == "" {
		return nil, errors.New("sync url is required")
	}
	if opts.Dest == "" {
		return nil, errors.New("sync destination is required")
	}
	if opts.CacheDir == "" {
		opts.CacheDir = filepath.Join(opts.Dest, SourceDirName)
	}
	return &Syncer{opts: opts}, nil
}

// CacheDir is where the repository is checked out.
func (s *Syncer) CacheDir() string {
	return s.opts.CacheDir
}

// Sync fetches the repository and copies each theme's assets into Dest. A
// theme directory missing from the package is reported, not treated as an
// error.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	res := &Result{
		Copied:    make(map[catalog.Theme]int),
		Unchanged: make(map[catalog.Theme]int),
	}

	repo, err := s.fetch(ctx, res)
	if err != nil {
		return nil, err
	}

	if head, err := repo.Head(); err == nil {
		res.Head = head.Hash().String()
	}

	root := filepath.Join(s.opts.CacheDir, filepath.FromSlash(s.opts.Subdir))
	for _, theme := range catalog.Themes() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src := filepath.Join(root, theme.String())
		info, err := os.Stat(src)
		if err != nil || !info.IsDir() {
			res.Missing = append(res.Missing, theme)
			s.opts.Logger.With("theme", theme.String()).With("dir", src).Warn("theme directory not found in package")
			continue
		}

		copied, unchanged, err := copyTheme(src, filepath.Join(s.opts.Dest, theme.String()), s.opts.Naming)
		if err != nil {
			return nil, fmt.Errorf("copy %s assets: %w", theme, err)
		}
		res.Copied[theme] = copied
		res.Unchanged[theme] = unchanged
	}

	s.opts.Logger.WithFields(map[string]any{
		"cloned":  res.Cloned,
		"updated": res.Updated,
		"light":   res.Copied[catalog.ThemeLight] + res.Unchanged[catalog.ThemeLight],
		"dark":    res.Copied[catalog.ThemeDark] + res.Unchanged[catalog.ThemeDark],
	}).Info("assets synced")

	return res, nil
}

// fetch opens the cached clone and pulls, or clones afresh when the cache is
// missing, is not a repository or tracks a different remote.
func (s *Syncer) fetch(ctx context.Context, res *Result) (*git.Repository, error) {
	repo, err := git.PlainOpen(s.opts.CacheDir)
	if err == nil && originURL(repo) == s.opts.URL {
		updated, err := s.pull(ctx, repo)
		if err != nil {
			return nil, err
		}
		res.Updated = updated
		return repo, nil
	}

	if _, statErr := os.Stat(s.opts.CacheDir); statErr == nil {
		if err := os.RemoveAll(s.opts.CacheDir); err != nil {
			return nil, fmt.Errorf("failed to remove stale checkout: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.opts.CacheDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	repo, err = git.PlainCloneContext(ctx, s.opts.CacheDir, false, s.cloneOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to clone repository: %w", err)
	}
	res.Cloned = true
	s.opts.Logger.With("url", s.opts.URL).Info("cloned icon repository")
	return repo, nil
}

func (s *Syncer) cloneOptions() *git.CloneOptions {
	opts := &git.CloneOptions{
		URL: s.opts.URL,
	}
	if s.opts.Depth > 0 {
		opts.Depth = s.opts.Depth
	}
	if s.opts.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(s.opts.Branch)
		opts.SingleBranch = true
	}
	return opts
}

func (s *Syncer) pull(ctx context.Context, repo *git.Repository) (bool, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	opts := &git.PullOptions{RemoteName: git.DefaultRemoteName}
	if s.opts.Depth > 0 {
		opts.Depth = s.opts.Depth
	}
	if s.opts.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(s.opts.Branch)
		opts.SingleBranch = true
	}

	err = wt.PullContext(ctx, opts)
	switch {
	case errors.Is(err, git.NoErrAlreadyUpToDate):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to pull repository: %w", err)
	}
	return true, nil
}

func originURL(repo *git.Repository) string {
	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil || len(remote.Config().URLs) == 0 {
		return ""
	}
	return remote.Config().URLs[0]
}
