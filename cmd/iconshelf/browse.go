package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/iconshelf/internal/browser"
	"github.com/alexisbeaulieu97/iconshelf/internal/clipboard"
	"github.com/alexisbeaulieu97/iconshelf/internal/tui"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive icon browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return newCommandError("browse", "starting the browser", errNotTerminal, "Use 'iconshelf list' for non-interactive output.")
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return newCommandError("browse", "loading configuration", err, "Fix the configuration file or command-line flags and try again.")
	}

	log, err := newFileLogger(cfg, "browser")
	if err != nil {
		return newCommandError("browse", "opening log file", err, "Check log_level and that log_file points to a writable location.")
	}
	defer log.Close()

	resolver, err := newResolver(cfg, log)
	if err != nil {
		return newCommandError("browse", "preparing catalog source", err, "Check the base_url setting.")
	}

	notifier := clipboard.NewNotifier(clipboard.Options{
		Origin:   cfg.Origin,
		Duration: cfg.AckDuration.Duration,
		Writer:   clipboard.SystemWriter{},
		Logger:   log,
	})

	ctrl := browser.New(browser.Options{
		Resolver:     resolver,
		Copier:       notifier,
		Naming:       cfg.Naming(),
		DefaultTheme: cfg.Theme(),
		Logger:       log,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(map[string]any{
		"source": resolver.Name(),
		"theme":  cfg.DefaultTheme,
	}).Info("starting browser")

	if err := tui.Run(ctx, tui.Options{Controller: ctrl, Notifier: notifier, Logger: log}); err != nil {
		return newCommandError("browse", "running the browser", err, "See the log file for details.")
	}
	return nil
}
