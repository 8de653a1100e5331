package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" in path with the user's home directory.
// Shells expand it already; this covers quoted arguments.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
