package gap

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// namePattern matches the zero-padded proposal naming convention. GAP-0 is
// the process proposal itself and is grandfathered in unpadded.
var namePattern = regexp.MustCompile(`^GAP-[0-9]{4}$`)

// CheckName verifies that name follows the proposal directory naming
// convention: the literal "GAP-0" or "GAP-" followed by exactly four digits.
func CheckName(name string) error {
	if name == "GAP-0" || namePattern.MatchString(name) {
		return nil
	}
	return fmt.Errorf("directory name must be GAP-0 or GAP-NNNN (four digits), got %q", name)
}

// BaseName derives the proposal name from a directory path.
func BaseName(path string) string {
	return filepath.Base(filepath.Clean(path))
}
