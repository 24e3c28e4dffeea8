package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// DefaultSSHCommand is the client used by the exec transport.
const DefaultSSHCommand = "ssh"

// Transports accepted by NewRemoteRunnerAdapter.
const (
	TransportExec   = "exec"
	TransportNative = "native"
)

// RemoteRunnerAdapter runs a command line on a remote host over SSH.
type RemoteRunnerAdapter interface {
	// Run executes command and streams its output to stdout and stderr.
	Run(ctx context.Context, command m.RemoteCommand, stdout, stderr io.Writer) error
}

// ExecRemoteRunnerAdapter shells out to the system ssh client.
type ExecRemoteRunnerAdapter struct {
	sshCommand string
}

// NewExecRemoteRunnerAdapter constructs an ExecRemoteRunnerAdapter. sshCommand
// may carry options, e.g. "ssh -o BatchMode=yes"; blank means DefaultSSHCommand.
func NewExecRemoteRunnerAdapter(sshCommand string) *ExecRemoteRunnerAdapter {
	if strings.TrimSpace(sshCommand) == "" {
		sshCommand = DefaultSSHCommand
	}

	return &ExecRemoteRunnerAdapter{sshCommand: sshCommand}
}

// Argv returns the full local argv used to run command.
func (a *ExecRemoteRunnerAdapter) Argv(command m.RemoteCommand) ([]string, error) {
	if command.Address == "" {
		return nil, fmt.Errorf("remote address is required")
	}

	argv, err := splitCommandLine(a.sshCommand)
	if err != nil {
		return nil, err
	}

	argv = append(argv, command.Address)
	argv = append(argv, command.Argv...)

	return argv, nil
}

// Run executes command through the ssh client.
func (a *ExecRemoteRunnerAdapter) Run(ctx context.Context, command m.RemoteCommand, stdout, stderr io.Writer) error {
	argv, err := a.Argv(command)
	if err != nil {
		return err
	}

	// #nosec G204 - argv is built from the user's configuration and arguments
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	slog.Info("dispatching remote command", "transport", TransportExec, "address", command.Address, "argv", argv)

	if err := cmd.Run(); err != nil {
		slog.Error("remote command failed", "address", command.Address, "error", err)
		return fmt.Errorf("failed to run remote command on %s: %w", command.Address, err)
	}

	return nil
}

// RemoteRunnerOptions configures NewRemoteRunnerAdapter.
type RemoteRunnerOptions struct {
	Transport  string
	SSHCommand string
	SSH        SSHOptions
}

// NewRemoteRunnerAdapter picks the runner for the configured transport.
func NewRemoteRunnerAdapter(opts RemoteRunnerOptions) (RemoteRunnerAdapter, error) {
	switch opts.Transport {
	case "", TransportExec:
		return NewExecRemoteRunnerAdapter(opts.SSHCommand), nil
	case TransportNative:
		return NewSSHRemoteRunnerAdapter(opts.SSH), nil
	default:
		return nil, fmt.Errorf("unknown transport %q", opts.Transport)
	}
}
