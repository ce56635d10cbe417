package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/iconshelf/pkg/errors"
)

func TestStaticResolverEnumeratesThemeDirectories(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"light/cherry.webp":      {},
		"light/apple.webp":       {},
		"light/readme.md":        {},
		"light/nested/deep.webp": {},
		"dark/apple-dark.webp":   {},
	}

	r := NewStaticResolver(fsys, DefaultNaming(), nil)
	c, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []IconID{"apple.webp", "cherry.webp"}, c.Icons(ThemeLight))
	assert.Equal(t, []IconID{"apple-dark.webp"}, c.Icons(ThemeDark))
	assert.Equal(t, "static", r.Name())
}

func TestStaticResolverMissingThemeIsEmpty(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"light/a.webp": {}}

	c, err := NewStaticResolver(fsys, DefaultNaming(), nil).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []IconID{"a.webp"}, c.Icons(ThemeLight))
	assert.Empty(t, c.Icons(ThemeDark))
}

func TestStaticResolverHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticResolver(fstest.MapFS{}, DefaultNaming(), nil).Resolve(ctx)
	var resolveErr *apperrors.ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.ErrorIs(t, err, context.Canceled)
}

const listingPage = `<!doctype html>
<meta name="viewport" content="width=device-width">
<pre>
<a href="../">../</a>
<a href="openai.webp">openai.webp</a>
<a href="/light/anthropic.webp">anthropic.webp</a>
<a href="./claude-dark.webp">claude-dark.webp</a>
<a href="readme.txt">readme.txt</a>
<a href="zhipu%20ai.webp">zhipu ai.webp</a>
<a href="openai.webp">openai.webp</a>
<link rel="stylesheet" href="style.css"/>
</pre>
`

type listingServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []string
}

func newListingServer(t *testing.T, handler http.HandlerFunc) *listingServer {
	t.Helper()
	ls := &listingServer{}
	ls.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ls.mu.Lock()
		ls.requests = append(ls.requests, r.URL.Path)
		ls.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(ls.Close)
	return ls
}

func (ls *listingServer) paths() []string {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return append([]string(nil), ls.requests...)
}

func TestHTTPResolverParsesListingAndDerivesDark(t *testing.T) {
	t.Parallel()

	srv := newListingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, listingPage)
	})

	r, err := NewHTTPResolver(HTTPOptions{BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	c, err := r.Resolve(context.Background())
	require.NoError(t, err)

	light := c.Icons(ThemeLight)
	assert.Equal(t, []IconID{"anthropic.webp", "openai.webp", "zhipu ai.webp"}, light)
	assert.Equal(t, []IconID{"anthropic-dark.webp", "openai-dark.webp", "zhipu ai-dark.webp"}, c.Icons(ThemeDark))
	assert.Equal(t, []string{"/light/"}, srv.paths(), "dark listing must never be fetched")
}

func TestHTTPResolverResolveThemeDark(t *testing.T) {
	t.Parallel()

	srv := newListingServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<a href="b.webp">b</a><a href="a.webp">a</a>`)
	})

	r, err := NewHTTPResolver(HTTPOptions{BaseURL: srv.URL})
	require.NoError(t, err)

	dark, err := r.ResolveTheme(context.Background(), ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, []IconID{"a-dark.webp", "b-dark.webp"}, dark)
	assert.Equal(t, []string{"/light/"}, srv.paths())
}

func TestHTTPResolverEmptyListingIsNotAnError(t *testing.T) {
	t.Parallel()

	srv := newListingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<pre></pre>")
	})

	r, err := NewHTTPResolver(HTTPOptions{BaseURL: srv.URL})
	require.NoError(t, err)

	c, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Total())
}

func TestHTTPResolverFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(http.StatusBadGateway)
				fmt.Fprint(w, listingPage)
			},
			status: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := newListingServer(t, tc.handler)
			r, err := NewHTTPResolver(HTTPOptions{BaseURL: srv.URL})
			require.NoError(t, err)

			c, err := r.Resolve(context.Background())
			require.Nil(t, c)
			var resolveErr *apperrors.ResolveError
			require.ErrorAs(t, err, &resolveErr)
			assert.Equal(t, "http", resolveErr.Source)
			assert.Equal(t, "light", resolveErr.Theme)
			assert.Equal(t, tc.status, resolveErr.StatusCode)
		})
	}
}

func TestHTTPResolverIgnoresContentType(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"plain text": "text/plain; charset=utf-8",
		"json":       "application/json",
		"missing":    "",
	}

	for name, contentType := range cases {
		contentType := contentType
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := newListingServer(t, func(w http.ResponseWriter, r *http.Request) {
				if contentType == "" {
					w.Header()["Content-Type"] = nil
				} else {
					w.Header().Set("Content-Type", contentType)
				}
				fmt.Fprint(w, `<a href="openai.webp">openai.webp</a> <a href="claude.webp">claude.webp</a>`)
			})
			r, err := NewHTTPResolver(HTTPOptions{BaseURL: srv.URL})
			require.NoError(t, err)

			c, err := r.Resolve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []IconID{"claude.webp", "openai.webp"}, c.Icons(ThemeLight))
			assert.Equal(t, []IconID{"claude-dark.webp", "openai-dark.webp"}, c.Icons(ThemeDark))
		})
	}
}

func TestHTTPResolverNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	r, err := NewHTTPResolver(HTTPOptions{BaseURL: base})
	require.NoError(t, err)

	c, err := r.Resolve(context.Background())
	require.Nil(t, c)
	var resolveErr *apperrors.ResolveError
	require.ErrorAs(t, err, &resolveErr)
}

func TestNewHTTPResolverRejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewHTTPResolver(HTTPOptions{BaseURL: "not a url"})
	require.Error(t, err)

	_, err = NewHTTPResolver(HTTPOptions{BaseURL: ""})
	require.Error(t, err)
}

func TestListingURL(t *testing.T) {
	t.Parallel()

	r, err := NewHTTPResolver(HTTPOptions{BaseURL: "http://icons.local/static//"})
	require.NoError(t, err)
	assert.Equal(t, "http://icons.local/static/light/", r.ListingURL(ThemeLight))
}
