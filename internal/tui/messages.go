package tui

import (
	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
	"github.com/alexisbeaulieu97/iconshelf/internal/clipboard"
)

// Focus determines which area receives key presses.
type Focus int

const (
	FocusGrid Focus = iota
	FocusSearch
)

// Catalog Messages

// CatalogLoadedMsg carries the resolved catalog.
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
}

// CatalogFailedMsg indicates the catalog could not be resolved.
type CatalogFailedMsg struct {
	Err error
}

// Clipboard Messages

// CopiedMsg indicates an icon URL reached the clipboard.
type CopiedMsg struct {
	Ack clipboard.Ack
}

// CopyFailedMsg indicates the clipboard rejected a copy.
type CopyFailedMsg struct {
	Path string
	Err  error
}

// AckChangedMsg is sent when the notifier shows or dismisses an
// acknowledgement, including from its dismissal timer.
type AckChangedMsg struct{}
