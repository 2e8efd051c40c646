package format

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/parser"
	"go.birchlake.dev/xjs/writer"
)

var (
	ErrUnknownExtension = errors.New("unknown extension")
	ErrReadInput        = errors.New("read input")
	ErrWriteOutput      = errors.New("write output")
)

// ParseFunc parses src into a document tree.
type ParseFunc func(src string) (*document.Value, error)

// WriteFunc renders v as text.
type WriteFunc func(v *document.Value) string

// Entry pairs a parser and writer under one registered extension.
type Entry struct {
	Parse ParseFunc
	Write WriteFunc
}

var (
	registry    atomic.Pointer[map[string]Entry]
	defaultExt  atomic.Pointer[string]
	registerMu  sync.Mutex // serializes the copy-on-write registry updates
)

func init() {
	m := map[string]Entry{}
	registry.Store(&m)

	ext := "xjs"
	defaultExt.Store(&ext)

	Register("json", Entry{
		Parse: func(src string) (*document.Value, error) { return parser.ParseStrict(src) },
		Write: func(v *document.Value) string { return writer.WriteStrict(v) },
	})
	Register("xjs", Entry{
		Parse: func(src string) (*document.Value, error) { return parser.Parse(src) },
		Write: func(v *document.Value) string { return writer.WriteXJS(v, writer.NewOptions()) },
	})
}

// Register adds or replaces the entry for ext (matched case-insensitively,
// without a leading dot). Safe for concurrent use with lookups; concurrent
// registrations are serialized.
func Register(ext string, e Entry) {
	ext = normalizeExt(ext)

	registerMu.Lock()
	defer registerMu.Unlock()

	old := *registry.Load()
	next := make(map[string]Entry, len(old)+1)

	for k, v := range old {
		next[k] = v
	}

	next[ext] = e

	registry.Store(&next)
}

// Lookup returns the entry registered for ext, if any.
func Lookup(ext string) (Entry, bool) {
	m := *registry.Load()
	e, ok := m[normalizeExt(ext)]

	return e, ok
}

// DefaultExtension returns the extension used when a path carries none.
func DefaultExtension() string {
	return *defaultExt.Load()
}

// SetDefaultExtension changes the extension used when a path carries none.
func SetDefaultExtension(ext string) {
	ext = normalizeExt(ext)
	defaultExt.Store(&ext)
}

// ScopeDefaults sets ext as the default extension for the duration of a
// test case, returning a closure that restores the prior default.
func ScopeDefaults(ext string) func() {
	prev := DefaultExtension()
	SetDefaultExtension(ext)

	return func() { SetDefaultExtension(prev) }
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// extensionOf returns the registry key for path: its file extension, or
// [DefaultExtension] if path has none.
func extensionOf(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return DefaultExtension()
	}

	return normalizeExt(ext)
}

// AutoParse reads path and parses it with the parser registered for its
// extension (or [DefaultExtension] if path has none).
func AutoParse(path string) (*document.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, path, err)
	}

	e, ok := Lookup(extensionOf(path))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, extensionOf(path))
	}

	v, err := e.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// AutoWrite renders v with the writer registered for path's extension (or
// [DefaultExtension] if path has none) and writes the result to path.
func AutoWrite(path string, v *document.Value) error {
	e, ok := Lookup(extensionOf(path))
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownExtension, extensionOf(path))
	}

	if err := os.WriteFile(path, []byte(e.Write(v)), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}

	return nil
}
