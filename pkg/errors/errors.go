// Package errors holds the typed errors iconshelf reports. Each one wraps its
// cause, so errors.Is and errors.As see through them.
package errors

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseError reports a configuration file that could not be read or decoded.
type ParseError struct {
	Path string
	// Format is the decoder chosen from the file extension ("yaml", "toml"),
	// empty when the extension is not recognised.
	Format string
	// Line is 1-based; 0 when the decoder did not report a position.
	Line int
	Err  error
}

// NewParseError constructs a ParseError, deriving Format from path.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Format: formatOf(path), Line: line, Err: err}
}

func formatOf(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	where := e.Path
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Format != "" {
		return fmt.Sprintf("cannot parse %s config %s: %v", e.Format, where, e.Err)
	}
	return fmt.Sprintf("cannot parse config %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError names the configuration field that failed a rule. Field
// uses the file's key path, for example "serve.addr".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return "invalid config: " + e.Message
	}
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ResolveError reports that the icon catalog could not be discovered. A
// resolver returning it has not populated any theme.
type ResolveError struct {
	Source string
	Theme  string
	// StatusCode is the HTTP status of a rejected listing request, 0 otherwise.
	StatusCode int
	Err        error
}

// NewResolveError constructs a ResolveError for the given source and theme.
func NewResolveError(source, theme string, err error) error {
	return &ResolveError{Source: source, Theme: theme, Err: err}
}

// NewResolveStatusError records a listing request answered with a non-2xx
// status.
func NewResolveStatusError(source, theme string, status int, err error) error {
	return &ResolveError{Source: source, Theme: theme, StatusCode: status, Err: err}
}

func (e *ResolveError) Error() string {
	if e == nil {
		return ""
	}
	if e.Theme != "" {
		return fmt.Sprintf("resolve error [%s/%s]: %v", e.Source, e.Theme, e.Err)
	}
	return fmt.Sprintf("resolve error [%s]: %v", e.Source, e.Err)
}

func (e *ResolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError indicates the clipboard rejected a write.
type ClipboardError struct {
	Text string
	Err  error
}

// NewClipboardError constructs a ClipboardError for the text that failed to copy.
func NewClipboardError(text string, err error) error {
	return &ClipboardError{Text: text, Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("clipboard error: copy %q: %v", e.Text, e.Err)
}

func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
