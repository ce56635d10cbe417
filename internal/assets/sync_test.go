package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
)

const pkgDir = "packages/static-webp"

// initIconRepo creates a repository holding files (slash paths relative to
// the repository root) in a single commit.
func initIconRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	commitFiles(t, dir, files)
	return dir
}

func commitFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err = wt.Add(name)
		require.NoError(t, err)
	}

	_, err = wt.Commit("update icons", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "iconshelf",
			Email: "iconshelf@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func TestSyncClonesAndCopiesThemes(t *testing.T) {
	origin := initIconRepo(t, map[string]string{
		"README.md":                        "icons",
		pkgDir + "/light/openai.webp":      "light-openai",
		pkgDir + "/light/claude.webp":      "light-claude",
		pkgDir + "/light/notes.txt":        "not an icon",
		pkgDir + "/dark/openai-dark.webp":  "dark-openai",
		pkgDir + "/light/nested/deep.webp": "skipped",
	})
	dest := t.TempDir()

	s, err := NewSyncer(Options{URL: origin, Subdir: pkgDir, Dest: dest})
	require.NoError(t, err)

	res, err := s.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Cloned)
	assert.False(t, res.Updated)
	assert.NotEmpty(t, res.Head)
	assert.Empty(t, res.Missing)
	assert.Equal(t, 2, res.Copied[catalog.ThemeLight])
	assert.Equal(t, 1, res.Copied[catalog.ThemeDark])
	assert.Equal(t, 3, res.Total())

	data, err := os.ReadFile(filepath.Join(dest, "light", "openai.webp"))
	require.NoError(t, err)
	assert.Equal(t, "light-openai", string(data))
	assert.NoFileExists(t, filepath.Join(dest, "light", "notes.txt"))
	assert.NoDirExists(t, filepath.Join(dest, "light", "nested"))
	assert.DirExists(t, filepath.Join(dest, SourceDirName, ".git"))

	// the synced directory is directly readable by the static resolver
	cat, err := catalog.NewStaticResolver(os.DirFS(dest), catalog.DefaultNaming(), nil).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.IconID{"claude.webp", "openai.webp"}, cat.Icons(catalog.ThemeLight))
	assert.Equal(t, []catalog.IconID{"openai-dark.webp"}, cat.Icons(catalog.ThemeDark))
}

func TestSyncPullsNewCommits(t *testing.T) {
	origin := initIconRepo(t, map[string]string{
		pkgDir + "/light/openai.webp":     "v1",
		pkgDir + "/dark/openai-dark.webp": "v1",
	})
	dest := t.TempDir()

	s, err := NewSyncer(Options{URL: origin, Subdir: pkgDir, Dest: dest})
	require.NoError(t, err)

	_, err = s.Sync(context.Background())
	require.NoError(t, err)

	// nothing new upstream
	res, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Cloned)
	assert.False(t, res.Updated)
	assert.Equal(t, 0, res.Copied[catalog.ThemeLight])
	assert.Equal(t, 1, res.Unchanged[catalog.ThemeLight])

	commitFiles(t, origin, map[string]string{
		pkgDir + "/light/openai.webp": "v2",
		pkgDir + "/light/gemini.webp": "v1",
	})

	res, err = s.Sync(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Cloned)
	assert.True(t, res.Updated)
	assert.Equal(t, 2, res.Copied[catalog.ThemeLight])
	assert.Equal(t, 1, res.Unchanged[catalog.ThemeDark])

	data, err := os.ReadFile(filepath.Join(dest, "light", "openai.webp"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestSyncMissingThemeIsAWarning(t *testing.T) {
	origin := initIconRepo(t, map[string]string{
		pkgDir + "/light/openai.webp": "light",
	})
	dest := t.TempDir()

	s, err := NewSyncer(Options{URL: origin, Subdir: pkgDir, Dest: dest})
	require.NoError(t, err)

	res, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.Theme{catalog.ThemeDark}, res.Missing)
	assert.Equal(t, 1, res.Total())
}

func TestSyncMissingPackageDirectory(t *testing.T) {
	origin := initIconRepo(t, map[string]string{"README.md": "no icons here"})
	dest := t.TempDir()

	s, err := NewSyncer(Options{URL: origin, Subdir: pkgDir, Dest: dest})
	require.NoError(t, err)

	res, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Themes(), res.Missing)
	assert.Equal(t, 0, res.Total())
}

func TestSyncReclonesWhenRemoteChanges(t *testing.T) {
	first := initIconRepo(t, map[string]string{pkgDir + "/light/a.webp": "a"})
	second := initIconRepo(t, map[string]string{pkgDir + "/light/b.webp": "b"})
	dest := t.TempDir()

	s, err := NewSyncer(Options{URL: first, Subdir: pkgDir, Dest: dest})
	require.NoError(t, err)
	_, err = s.Sync(context.Background())
	require.NoError(t, err)

	s, err = NewSyncer(Options{URL: second, Subdir: pkgDir, Dest: dest})
	require.NoError(t, err)
	res, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Cloned)
	assert.FileExists(t, filepath.Join(dest, "light", "b.webp"))
}

func TestSyncCloneFailure(t *testing.T) {
	s, err := NewSyncer(Options{
		URL:  filepath.Join(t.TempDir(), "does-not-exist"),
		Dest: t.TempDir(),
	})
	require.NoError(t, err)

	_, err = s.Sync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clone repository")
}

func TestNewSyncerValidation(t *testing.T) {
	t.Parallel()

	_, err := NewSyncer(Options{Dest: "dist"})
	require.Error(t, err)

	_, err = NewSyncer(Options{URL: "https://example.com/icons.git"})
	require.Error(t, err)

	s, err := NewSyncer(Options{URL: "https://example.com/icons.git", Dest: "dist"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("dist", SourceDirName), s.CacheDir())
}
