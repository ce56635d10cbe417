package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	source     string
	assetsDir  string
	baseURL    string
	origin     string
	theme      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "iconshelf",
		Short:         "Browse, search and copy links to themed icon assets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand opens the browser
			if len(args) == 0 {
				return runBrowse(cmd, flags)
			}
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to iconshelf.yaml or iconshelf.toml")
	pf.StringVar(&flags.source, "source", "", "Catalog source (static or http)")
	pf.StringVar(&flags.assetsDir, "assets", "", "Directory holding light/ and dark/ icon folders")
	pf.StringVar(&flags.baseURL, "base-url", "", "Server to read directory listings from when source is http")
	pf.StringVar(&flags.origin, "origin", "", "Origin prefixed to copied icon paths")
	pf.StringVar(&flags.theme, "theme", "", "Initial theme (light or dark)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newSyncCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
