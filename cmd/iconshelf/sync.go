package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/iconshelf/internal/assets"
	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
)

func newSyncCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch icon assets from the configured git repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, rootFlags)
		},
	}
}

func runSync(cmd *cobra.Command, rootFlags *rootFlags) error {
	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return newCommandError("sync", "loading configuration", err, "Fix the configuration file or command-line flags and try again.")
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr(), "sync")
	if err != nil {
		return newCommandError("sync", "creating logger", err, "Use one of trace, debug, info, warn or error for log_level.")
	}

	syncer, err := assets.NewSyncer(assets.Options{
		URL:    cfg.Sync.URL,
		Branch: cfg.Sync.Branch,
		Depth:  cfg.Sync.Depth,
		Subdir: cfg.Sync.Subdir,
		Dest:   cfg.AssetsDir,
		Naming: cfg.Naming(),
		Logger: log,
	})
	if err != nil {
		return newCommandError("sync", "preparing sync", err, "Set sync.url in the configuration file.")
	}

	res, err := syncer.Sync(cmd.Context())
	if err != nil {
		return newCommandError("sync", "fetching "+cfg.Sync.URL, err, "Check the repository URL and your network connection.")
	}

	renderSyncResult(cmd.OutOrStdout(), cfg.AssetsDir, res)
	return nil
}

func renderSyncResult(out io.Writer, dest string, res *assets.Result) {
	switch {
	case res.Cloned:
		fmt.Fprintf(out, "Cloned %s\n", shortHash(res.Head))
	case res.Updated:
		fmt.Fprintf(out, "Updated to %s\n", shortHash(res.Head))
	default:
		fmt.Fprintf(out, "Already up to date at %s\n", shortHash(res.Head))
	}

	for _, theme := range catalog.Themes() {
		fmt.Fprintf(out, "  %-5s %d copied, %d unchanged\n", theme, res.Copied[theme], res.Unchanged[theme])
	}
	for _, theme := range res.Missing {
		fmt.Fprintf(out, "warning: no %s icons found in the repository\n", theme)
	}

	fmt.Fprintf(out, "%d icons in %s\n", res.Total(), dest)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
