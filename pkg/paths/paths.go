// Package paths provides typed path handling for linkshell.
// Every request path is validated, home-expanded, made absolute, and
// cleaned exactly once before the link core sees it; later checks reuse
// the resolved value rather than re-resolving.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/linkshell/pkg/errors"
)

// MaxPathLength is the longest raw path accepted from user input.
// Common filesystem limit; NTFS long-path support notwithstanding, anything
// beyond this is almost certainly garbage input.
const MaxPathLength = 4096

// ValidatePath performs basic validation on a raw user-supplied path.
// It checks for:
// - Empty paths
// - Embedded null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	if len(path) > MaxPathLength {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// Resolve validates a raw path and returns its canonical absolute form.
// Home expansion, absolutization against the current working directory,
// and separator normalization (including trailing separators) all happen
// here, once. Resolve does not touch the filesystem beyond reading the CWD,
// so it works for paths that do not exist yet.
func Resolve(raw string) (string, error) {
	if err := ValidatePath(raw); err != nil {
		return "", err
	}

	path := ExpandHome(raw)

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %q", raw)
	}

	// filepath.Abs already cleans, which strips trailing separators and
	// collapses redundant ones.
	return abs, nil
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
// If the home directory cannot be determined the path is returned as-is.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == os.PathSeparator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user form is not supported; leave untouched.
	return path
}

// Equal reports whether two resolved paths denote the same location.
// On case-insensitive filesystems (Windows) the comparison folds case.
func Equal(a, b string) bool {
	if a == b {
		return true
	}
	if caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return false
}
