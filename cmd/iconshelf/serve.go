package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/iconshelf/internal/server"
)

type serveOptions struct {
	addr string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the icon directory over HTTP with directory listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (defaults to serve.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, rootFlags *rootFlags, opts *serveOptions) error {
	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return newCommandError("serve", "loading configuration", err, "Fix the configuration file or command-line flags and try again.")
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr(), "server")
	if err != nil {
		return newCommandError("serve", "creating logger", err, "Use one of trace, debug, info, warn or error for log_level.")
	}

	if info, err := os.Stat(cfg.AssetsDir); err != nil || !info.IsDir() {
		if err == nil {
			err = os.ErrInvalid
		}
		return newCommandError("serve", "opening "+cfg.AssetsDir, err, "Run 'iconshelf sync' first or pass --assets.")
	}

	if !rootFlags.verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	engine, err := server.NewEngine(server.Options{
		Root:   os.DirFS(cfg.AssetsDir),
		Naming: cfg.Naming(),
		Origin: cfg.Origin,
		Logger: log,
	})
	if err != nil {
		return newCommandError("serve", "building routes", err, "Check the assets directory layout.")
	}

	addr := cfg.Serve.Addr
	if opts.addr != "" {
		addr = opts.addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx, addr, engine, log); err != nil {
		return newCommandError("serve", "listening on "+addr, err, "Choose a free address with --addr.")
	}
	return nil
}
