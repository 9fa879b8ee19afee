// Package safeio guards file access against user-supplied path tricks.
package safeio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// CleanUserPath cleans a user-provided path and rejects traversal attempts.
// Returns paths with forward slashes for cross-platform consistency.
func CleanUserPath(p string) (string, error) {
	c := filepath.Clean(p)
	if strings.Contains(c, "..") {
		return "", errors.New("path traversal detected")
	}
	return filepath.ToSlash(c), nil
}

// ReadFileContained reads filePath only if it resolves to a location inside
// baseDir. Returns an error if the path escapes baseDir or cannot be read.
func ReadFileContained(baseDir, filePath string) ([]byte, error) {
	baseAbs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, errors.New("failed to resolve base directory")
	}
	fileAbs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, errors.New("failed to resolve file path")
	}

	rel, err := filepath.Rel(baseAbs, fileAbs)
	if err != nil {
		return nil, errors.New("failed to compute relative path")
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, errors.New("file path is outside base directory")
	}

	// #nosec G304 -- fileAbs verified to be contained within baseAbs
	return os.ReadFile(fileAbs)
}
