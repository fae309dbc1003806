package pathutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SanitizeOutputPath cleans path, makes it absolute and refuses it when it
// names an existing symlink. Nonexistent paths pass through so callers can
// create them.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("pathutil: resolve %q: %w", path, err)
	}

	info, err := os.Lstat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("pathutil: stat %s: %w", abs, err)
	}
	if info.Mode().Type() == fs.ModeSymlink {
		return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
	}
	return abs, nil
}
