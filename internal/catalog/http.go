package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/iconshelf/internal/logger"
	apperrors "github.com/alexisbeaulieu97/iconshelf/pkg/errors"
)

const maxListingBytes = 8 << 20

// HTTPOptions configures an HTTPResolver.
type HTTPOptions struct {
	BaseURL string
	Client  *http.Client
	Naming  Naming
	Timeout time.Duration
	Logger  *logger.Logger
}

// HTTPResolver reads the light theme's directory listing from a server and
// derives the dark list from it by name transformation. The dark listing is
// never fetched.
type HTTPResolver struct {
	baseURL string
	client  *http.Client
	naming  Naming
	log     *logger.Logger
}

// NewHTTPResolver validates opts and builds a resolver.
func NewHTTPResolver(opts HTTPOptions) (*HTTPResolver, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", opts.BaseURL)
	}

	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPResolver{
		baseURL: base,
		client:  client,
		naming:  opts.Naming.withDefaults(),
		log:     opts.Logger,
	}, nil
}

// Name implements Resolver.
func (r *HTTPResolver) Name() string {
	return string(SourceHTTP)
}

// Resolve implements Resolver. One request is issued, for the light listing.
func (r *HTTPResolver) Resolve(ctx context.Context) (*Catalog, error) {
	started := time.Now()
	light, err := r.fetchListing(ctx, ThemeLight)
	if err != nil {
		r.log.With("source", r.Name()).Error(err, "catalog resolution failed")
		return nil, err
	}

	c := New(map[Theme][]IconID{
		ThemeLight: light,
		ThemeDark:  r.naming.DeriveDark(light),
	})
	logResolved(r.log, r.Name(), c, started)
	return c, nil
}

// ResolveTheme implements Resolver. The dark theme is derived from the light
// listing.
func (r *HTTPResolver) ResolveTheme(ctx context.Context, theme Theme) ([]IconID, error) {
	light, err := r.fetchListing(ctx, ThemeLight)
	if err != nil {
		return nil, err
	}
	if theme == ThemeDark {
		return normalize(r.naming.DeriveDark(light)), nil
	}
	return light, nil
}

// ListingURL is the directory listing location for theme.
func (r *HTTPResolver) ListingURL(theme Theme) string {
	return r.baseURL + "/" + theme.String() + "/"
}

func (r *HTTPResolver) fetchListing(ctx context.Context, theme Theme) ([]IconID, error) {
	target := r.ListingURL(theme)
	r.log.With("url", target).Debug("fetching directory listing")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperrors.NewResolveError(r.Name(), theme.String(), err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, apperrors.NewResolveError(r.Name(), theme.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewResolveStatusError(r.Name(), theme.String(), resp.StatusCode,
			fmt.Errorf("GET %s: unexpected status %s", target, resp.Status))
	}
	// The body is tokenized whatever its Content-Type; only href attributes count.
	hrefs, err := extractHrefs(io.LimitReader(resp.Body, maxListingBytes))
	if err != nil {
		return nil, apperrors.NewResolveError(r.Name(), theme.String(), err)
	}

	return r.iconsFromHrefs(hrefs), nil
}

// iconsFromHrefs keeps references to icon assets, strips any path prefix and
// drops entries already named as dark variants.
func (r *HTTPResolver) iconsFromHrefs(hrefs []string) []IconID {
	ids := make([]IconID, 0, len(hrefs))
	for _, href := range hrefs {
		if !r.naming.IsAsset(href) {
			continue
		}
		name := path.Base(href)
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		id := IconID(name)
		if id == "" || r.naming.IsDarkVariant(id) {
			continue
		}
		ids = append(ids, id)
	}
	return normalize(ids)
}

func extractHrefs(body io.Reader) ([]string, error) {
	tokenizer := html.NewTokenizer(body)
	var hrefs []string
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse listing: %w", err)
			}
			return hrefs, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			_, more := tokenizer.TagName()
			for more {
				var key, val []byte
				key, val, more = tokenizer.TagAttr()
				if string(key) == "href" {
					hrefs = append(hrefs, strings.TrimSpace(string(val)))
				}
			}
		}
	}
}

var _ Resolver = (*HTTPResolver)(nil)
