package domain

import (
	"errors"
	"fmt"
	"strings"

	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// Sentinel errors matched with errors.Is.
var (
	ErrPathNotFound   = errors.New("path not found")
	ErrStaleMount     = errors.New("stale sshfs mount")
	ErrUnresolvedPath = errors.New("path is not on an sshfs mount")
)

// PathNotFoundError reports a candidate path that does not exist locally.
type PathNotFoundError struct {
	Path m.Path
	Err  error
}

func (e *PathNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("local path %s does not exist", e.Path)
	}

	return fmt.Sprintf("local path %s does not exist: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrPathNotFound and the filesystem error.
func (e *PathNotFoundError) Unwrap() []error {
	return []error{ErrPathNotFound, e.Err}
}

// StaleMountError reports a listed mount point that can no longer be resolved.
type StaleMountError struct {
	LocalRoot m.Path
	Err       error
}

func (e *StaleMountError) Error() string {
	return fmt.Sprintf("sshfs mount %s no longer exists", e.LocalRoot)
}

// Unwrap exposes both ErrStaleMount and the filesystem error.
func (e *StaleMountError) Unwrap() []error {
	return []error{ErrStaleMount, e.Err}
}

// UnresolvedPathError names every path no mount covers.
type UnresolvedPathError struct {
	Paths []m.Path
}

func (e *UnresolvedPathError) Error() string {
	names := make([]string, 0, len(e.Paths))
	for _, p := range e.Paths {
		names = append(names, string(p))
	}

	return fmt.Sprintf("could not translate local path %s to an sshfs mount", strings.Join(names, " or "))
}

// Unwrap returns ErrUnresolvedPath.
func (e *UnresolvedPathError) Unwrap() error {
	return ErrUnresolvedPath
}
