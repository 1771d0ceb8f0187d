package fixtures

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sqlskim/baseline/internal/domain"
)

// Enumerator implements domain.FixtureSource by listing a single directory.
// Subdirectories (Expected/, Actual/, ...) are never descended into.
type Enumerator struct{}

func New() *Enumerator {
	return &Enumerator{}
}

// Enumerate returns the absolute paths of the regular files directly under
// root whose base name matches filter, in directory listing order. The
// sequence is lazy and can be ranged over only once.
func (e *Enumerator) Enumerate(root, filter string) (iter.Seq[string], error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving fixture root: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &domain.FixtureDirectoryNotFoundError{Dir: absRoot}
		}
		return nil, fmt.Errorf("reading fixture root: %w", err)
	}
	if !info.IsDir() {
		return nil, &domain.FixtureDirectoryNotFoundError{Dir: absRoot}
	}

	if !doublestar.ValidatePattern(filter) {
		return nil, fmt.Errorf("invalid fixture filter %q", filter)
	}

	// os.ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, fmt.Errorf("listing fixture root: %w", err)
	}

	consumed := false
	return func(yield func(string) bool) {
		if consumed {
			return
		}
		consumed = true

		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			if ok, _ := doublestar.Match(filter, entry.Name()); !ok {
				continue
			}
			if !yield(filepath.Join(absRoot, entry.Name())) {
				return
			}
		}
	}, nil
}
