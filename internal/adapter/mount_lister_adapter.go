package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultMountListCommand lists every mount, one per line, target first.
const DefaultMountListCommand = "findmnt -l"

// MountListerAdapter captures the raw system mount listing.
type MountListerAdapter interface {
	// ListMounts returns the listing output split into lines.
	ListMounts(ctx context.Context) ([]string, error)
}

// LocalMountListerAdapter runs a mount listing utility through os/exec.
type LocalMountListerAdapter struct {
	commandLine string
}

// NewLocalMountListerAdapter constructs a LocalMountListerAdapter running
// commandLine, or DefaultMountListCommand when it is blank.
func NewLocalMountListerAdapter(commandLine string) *LocalMountListerAdapter {
	if strings.TrimSpace(commandLine) == "" {
		commandLine = DefaultMountListCommand
	}

	return &LocalMountListerAdapter{commandLine: commandLine}
}

// ListMounts runs the listing command and returns its stdout lines.
func (a *LocalMountListerAdapter) ListMounts(ctx context.Context) ([]string, error) {
	argv, err := splitCommandLine(a.commandLine)
	if err != nil {
		return nil, err
	}

	// #nosec G204 - the listing command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Error("mount listing failed", "command", a.commandLine, "stderr", strings.TrimSpace(stderr.String()), "error", err)
		return nil, fmt.Errorf("failed to list mounts with %q: %w", a.commandLine, err)
	}

	lines := splitLines(stdout.Bytes())
	slog.Debug("listed mounts", "command", a.commandLine, "lines", len(lines))

	return lines, nil
}

func splitLines(data []byte) []string {
	var lines []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines
}
