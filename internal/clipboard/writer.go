// Package clipboard copies icon URLs to the system clipboard and manages the
// transient acknowledgement shown after a successful copy.
package clipboard

import (
	"context"
	"errors"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// Writer puts text on a clipboard. A write either fully succeeds or fails.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

// WriteText implements Writer.
func (f WriterFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// ErrUnsupported is returned by SystemWriter when no clipboard backend exists.
var ErrUnsupported = errors.New("system clipboard unavailable")

// SystemWriter writes to the OS clipboard through xclip/xsel/wl-copy,
// pbcopy or the Windows API.
type SystemWriter struct{}

// WriteText implements Writer.
func (SystemWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	return sysclip.WriteAll(text)
}

// MemoryWriter records writes in memory. Setting Err makes every write fail.
type MemoryWriter struct {
	mu     sync.Mutex
	Err    error
	writes []string
}

// WriteText implements Writer.
func (m *MemoryWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.writes = append(m.writes, text)
	return nil
}

// Writes returns every successful write in order.
func (m *MemoryWriter) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

// Last returns the most recent successful write.
func (m *MemoryWriter) Last() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return "", false
	}
	return m.writes[len(m.writes)-1], true
}
