package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KostasZigo/commitlint/internal/constants"
)

// ErrNotARepository is returned when no .git entry exists in start or any parent.
var ErrNotARepository = errors.New("not a git repository")

// FindRoot locates the repository root by walking up the directory tree from start.
// A .git directory or a .git file (worktrees, submodules) both mark a root.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", start, err)
	}

	for {
		gitPath := filepath.Join(dir, constants.GitDir)
		_, err := os.Stat(gitPath)
		if err == nil {
			slog.Debug("Found repository root", "path", dir)
			return dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to check %s: %w", gitPath, err)
		}

		// Dir returns all but the last element of path
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding .git
			return "", fmt.Errorf("%w: %s", ErrNotARepository, start)
		}
		dir = parent
	}
}

// ConfigPath returns the path of the configuration file at the repository root
// and whether it exists.
func ConfigPath(root string) (string, bool) {
	path := filepath.Join(root, constants.ConfigFileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, false
	}
	return path, true
}
