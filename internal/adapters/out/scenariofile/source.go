package scenariofile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dronefleet/internal/core/ports"
)

// ErrPathNotAllowed is returned, wrapped in ports.ErrSourceUnavailable, for
// scenario names that would leave the scenario directory.
var ErrPathNotAllowed = errors.New("scenario path is outside the scenario directory")

// Source reads scenarios from files under one directory. The scenario name is a
// path relative to that directory; absolute paths, ".." and symlinks leading
// outside it are refused.
type Source struct {
	dir string
}

// New creates a Source serving files under dir.
func New(dir string) Source {
	return Source{dir: dir}
}

var _ ports.ScenarioSource = Source{}

// Read opens and parses the scenario file name.
func (s Source) Read(ctx context.Context, name string) ([]ports.ScenarioRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %s: %w", ports.ErrSourceUnavailable, name, ErrPathNotAllowed)
	}

	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open scenario directory %s: %w", ports.ErrSourceUnavailable, s.dir, err)
	}
	defer func() {
		_ = root.Close()
	}()

	f, err := root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s: %w", ports.ErrSourceUnavailable, name, err)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := Parse(f)
	if err != nil {
		if errors.Is(err, ports.ErrMalformedLine) {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return nil, err
	}

	return records, nil
}
