// Package controller provides the output side of sshbatch: tables, YAML and
// the streams remote commands write to.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// UI defines how workflow results are shown to the user.
type UI interface {
	DisplayMountTable(ctx context.Context, table m.MountTable) error
	DisplayResolutions(ctx context.Context, resolutions []m.Resolution, format m.OutputFormat) error
	DisplayRemoteCommand(ctx context.Context, command m.RemoteCommand, dryRun bool) error
	// Streams returns the writers a remote command's output is copied to.
	Streams() (stdout io.Writer, stderr io.Writer)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
