package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the browser on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) error {
	m := NewModel(opts)

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, programOpts...)
	p := tea.NewProgram(m, options...)

	if opts.Notifier != nil {
		opts.Notifier.OnChange(func() { p.Send(AckChangedMsg{}) })
		defer opts.Notifier.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
