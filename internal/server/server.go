// Package server serves the icon asset directory over HTTP. Each theme is
// mounted with directory listings enabled, which is what the HTTP catalog
// resolver reads.
//
//	GET /light/*, /dark/*   asset files and listings
//	GET /api/icons          JSON catalog for a theme, optionally filtered
//	GET /healthz            liveness
package server

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
	"github.com/alexisbeaulieu97/iconshelf/internal/logger"
)

// shutdownTimeout bounds graceful shutdown once the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Options configures the HTTP engine.
type Options struct {
	// Root holds the light/ and dark/ directories.
	Root   fs.FS
	Naming catalog.Naming
	// Origin, when set, is prefixed to icon paths in API responses.
	Origin string
	Logger *logger.Logger
}

// NewEngine builds the gin engine serving opts.Root.
func NewEngine(opts Options) (*gin.Engine, error) {
	if opts.Root == nil {
		return nil, errors.New("asset root is required")
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(opts.Logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, theme := range catalog.Themes() {
		sub, err := fs.Sub(opts.Root, theme.String())
		if err != nil {
			return nil, err
		}
		r.StaticFS("/"+theme.String(), http.FS(sub))
	}

	h := &iconsHandler{
		resolver: catalog.NewStaticResolver(opts.Root, opts.Naming, opts.Logger),
		naming:   opts.Naming,
		origin:   opts.Origin,
	}
	api := r.Group("/api")
	{
		api.GET("/icons", h.list)
	}

	return r, nil
}

// ListenAndServe runs handler on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, log *logger.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.With("addr", addr).Info("serving icon assets")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(map[string]any{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request")
	}
}
