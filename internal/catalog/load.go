package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seantiz/roster/internal/model"
)

// ErrUnsupportedFormat is returned for catalog paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Load reads the catalog at path, choosing the format from the file
// extension. An empty path yields the built-in catalog.
func Load(ctx context.Context, path string) (model.Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		return LoadYAML(f)

	case ".db", ".sqlite", ".sqlite3":
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		c, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		defer c.Close()
		return c.Load(ctx)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
