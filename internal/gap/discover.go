package gap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches the proposal directory naming prefix.
const DefaultPattern = "GAP-*"

// Candidate is a discovered proposal directory.
type Candidate struct {
	Name string
	Path string
}

// Discover lists root's immediate entries and keeps directories whose name
// matches pattern. os.ReadDir sorts entries by filename, so candidates come
// back in lexical order (numeric order for zero-padded names).
func Discover(root, pattern string) ([]Candidate, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid proposal pattern %q", pattern)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		matched, _ := doublestar.Match(pattern, entry.Name())
		if !matched {
			continue
		}
		candidates = append(candidates, Candidate{
			Name: entry.Name(),
			Path: filepath.Join(root, entry.Name()),
		})
	}
	return candidates, nil
}
