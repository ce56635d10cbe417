package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/iconshelf/internal/config"
	"github.com/alexisbeaulieu97/iconshelf/internal/render"
	"github.com/alexisbeaulieu97/iconshelf/internal/viewstate"
)

type listOptions struct {
	query      string
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the icons of one theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Only show icons whose id contains this text")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return newCommandError("list", "loading configuration", err, "Fix the configuration file or command-line flags and try again.")
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr(), "list")
	if err != nil {
		return newCommandError("list", "creating logger", err, "Use one of trace, debug, info, warn or error for log_level.")
	}

	resolver, err := newResolver(cfg, log)
	if err != nil {
		return newCommandError("list", "preparing catalog source", err, "Check the base_url setting.")
	}

	theme := cfg.Theme()
	ids, err := resolver.ResolveTheme(cmd.Context(), theme)
	if err != nil {
		return newCommandError("list", fmt.Sprintf("reading the %s catalog", theme), err, listSuggestion(cfg))
	}

	view := render.New(cfg.Naming()).Render(viewstate.Filter(ids, opts.query), theme)

	if opts.jsonOutput {
		return renderListJSON(cmd.OutOrStdout(), cfg, view)
	}

	out := cmd.OutOrStdout()
	if width, ok := terminalWidth(out); ok {
		fmt.Fprintln(out, view.Summary)
		fmt.Fprintln(out, render.Grid(view, render.DefaultGridOptions(width)))
		return nil
	}
	_, err = io.WriteString(out, render.Plain(view))
	return err
}

func listSuggestion(cfg *config.Config) string {
	if cfg.Source == "http" {
		return fmt.Sprintf("Check that %s is reachable and serves directory listings.", cfg.BaseURL)
	}
	return fmt.Sprintf("Run 'iconshelf sync' to populate %s, or pass --assets.", cfg.AssetsDir)
}

type listJSONIcon struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
	URL   string `json:"url"`
}

type listJSONPayload struct {
	Theme   string         `json:"theme"`
	Count   int            `json:"count"`
	Summary string         `json:"summary"`
	Icons   []listJSONIcon `json:"icons"`
}

func renderListJSON(out io.Writer, cfg *config.Config, view render.View) error {
	origin := strings.TrimRight(cfg.Origin, "/")
	payload := listJSONPayload{
		Theme:   view.Theme.String(),
		Count:   view.Count(),
		Summary: view.Summary,
		Icons:   make([]listJSONIcon, len(view.Cards)),
	}

	for i, card := range view.Cards {
		payload.Icons[i] = listJSONIcon{
			ID:    card.ID.String(),
			Label: card.Label,
			Path:  card.Path,
			URL:   origin + card.Path,
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// terminalWidth reports the width of writer when it is a terminal.
func terminalWidth(writer any) (int, bool) {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}
