// Package adapter contains the infrastructure adapters used by sshbatch: the
// local filesystem, the mount listing utility and the remote shell.
package adapter

import (
	"fmt"
	"path/filepath"

	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// PathFSAdapter abstracts the filesystem lookups the resolver relies on. It
// hides direct `os` access so resolution logic can be tested without mounts.
type PathFSAdapter interface {
	// Canonicalize returns the absolute, symlink-free, cleaned form of path.
	// The path must exist; a missing path yields an error wrapping
	// fs.ErrNotExist.
	Canonicalize(path m.Path) (m.Path, error)
}

// LocalPathFSAdapter implements PathFSAdapter on the local filesystem.
type LocalPathFSAdapter struct{}

// NewLocalPathFSAdapter constructs a LocalPathFSAdapter.
func NewLocalPathFSAdapter() *LocalPathFSAdapter {
	return &LocalPathFSAdapter{}
}

// Canonicalize resolves path strictly: every component must exist.
func (a *LocalPathFSAdapter) Canonicalize(path m.Path) (m.Path, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", fmt.Errorf("failed to make %s absolute: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(filepath.Clean(resolved)), nil
}
