// Package loader reads survey tabulations from disk into Tables.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when the input file does not exist.
var ErrNotFound = errors.New("file not found")

// Parser reads one tabular file format.
type Parser interface {
	CanParse(filename string) bool
	Parse(name string, data []byte) (*Table, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

func init() {
	Register(xlsxParser{})
	Register(csvParser{})
}

// Load reads path and parses it with the first registered parser that
// accepts its name. Unknown extensions are parsed as CSV.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	name := filepath.Base(path)
	for _, p := range registry {
		if p.CanParse(name) {
			return p.Parse(name, data)
		}
	}
	return csvParser{}.Parse(name, data)
}

// Reporter receives user-facing failure messages.
type Reporter interface {
	Errorf(format string, args ...any)
}

// LoadOrEmpty is Load for page pipelines: failures are reported to r and
// logged, and an empty table is returned in place of an error.
func LoadOrEmpty(path string, r Reporter) *Table {
	t, err := Load(path)
	if err != nil {
		slog.Warn("load table failed", "path", path, "err", err)
		if r != nil {
			r.Errorf("Failed to read %s: %v", path, err)
		}
		return Empty(filepath.Base(path))
	}
	slog.Debug("loaded table", "path", path, "rows", t.Len(), "cols", len(t.Header))
	return t
}
