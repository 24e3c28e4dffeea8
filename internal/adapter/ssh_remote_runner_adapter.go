package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"

	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

const (
	defaultSSHPort     = "22"
	defaultDialTimeout = 10 * time.Second
)

// SSHOptions configures the native SSH transport.
type SSHOptions struct {
	// User is used when the address carries no "user@" part.
	User string
	// IdentityFile is an optional private key.
	IdentityFile string
	// AgentSocket is the ssh-agent socket; usually $SSH_AUTH_SOCK.
	AgentSocket string
	// KnownHostsFile is checked for the server host key.
	KnownHostsFile string
}

// SSHRemoteRunnerAdapter runs commands with golang.org/x/crypto/ssh instead
// of an external client.
type SSHRemoteRunnerAdapter struct {
	opts SSHOptions
}

// NewSSHRemoteRunnerAdapter constructs an SSHRemoteRunnerAdapter.
func NewSSHRemoteRunnerAdapter(opts SSHOptions) *SSHRemoteRunnerAdapter {
	return &SSHRemoteRunnerAdapter{opts: opts}
}

// Run dials the host, opens a session and runs the argv joined by spaces, the
// same way the ssh client forwards its trailing arguments.
func (a *SSHRemoteRunnerAdapter) Run(ctx context.Context, command m.RemoteCommand, stdout, stderr io.Writer) error {
	user, hostPort, err := splitAddress(command.Address, a.opts.User)
	if err != nil {
		return err
	}

	config, closeAgent, err := a.clientConfig(user)
	if err != nil {
		return err
	}

	defer closeAgent()

	dialer := &net.Dialer{Timeout: defaultDialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", hostPort)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", hostPort, err)
	}

	clientConn, chans, reqs, err := ssh.NewClientConn(conn, hostPort, config)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to establish ssh connection to %s: %w", hostPort, err)
	}

	client := ssh.NewClient(clientConn, chans, reqs)
	defer func() { _ = client.Close() }()

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to open ssh session: %w", err)
	}

	defer func() { _ = session.Close() }()

	session.Stdout = stdout
	session.Stderr = stderr

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = client.Close()
		case <-done:
		}
	}()

	line := strings.Join(command.Argv, " ")
	slog.Info("dispatching remote command", "transport", TransportNative, "address", command.Address, "command", line)

	if err := session.Run(line); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		slog.Error("remote command failed", "address", command.Address, "error", err)

		return fmt.Errorf("failed to run remote command on %s: %w", command.Address, err)
	}

	return nil
}

// clientConfig collects the auth methods and host key check for user. The
// returned func closes the agent connection once the session is over.
func (a *SSHRemoteRunnerAdapter) clientConfig(user string) (*ssh.ClientConfig, func(), error) {
	var auths []ssh.AuthMethod

	closeAgent := func() {}

	if a.opts.IdentityFile != "" {
		signer, err := parsePrivateKey(expandHome(a.opts.IdentityFile))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load identity %s: %w", a.opts.IdentityFile, err)
		}

		auths = append(auths, ssh.PublicKeys(signer))
	}

	if a.opts.AgentSocket != "" {
		conn, err := net.Dial("unix", a.opts.AgentSocket)
		if err != nil {
			// Only fatal when the agent was the sole way to authenticate.
			if len(auths) == 0 {
				return nil, nil, fmt.Errorf("failed to connect to ssh agent: %w", err)
			}

			slog.Warn("ssh agent unreachable, using identity file only", "socket", a.opts.AgentSocket, "error", err)
		} else {
			closeAgent = func() { _ = conn.Close() }

			agentClient := agent.NewClient(conn)
			auths = append(auths, ssh.PublicKeysCallback(agentClient.Signers))
		}
	}

	if len(auths) == 0 {
		return nil, nil, errors.New("no ssh authentication method: set an identity file or SSH_AUTH_SOCK")
	}

	hostKeyCallback, err := knownhosts.New(expandHome(a.opts.KnownHostsFile))
	if err != nil {
		closeAgent()
		return nil, nil, fmt.Errorf("failed to load known hosts %s: %w", a.opts.KnownHostsFile, err)
	}

	return &ssh.ClientConfig{
		User:            user,
		Auth:            auths,
		HostKeyCallback: hostKeyCallback,
		Timeout:         defaultDialTimeout,
	}, closeAgent, nil
}

func parsePrivateKey(keyPath string) (ssh.Signer, error) {
	// #nosec G304 - the key path is the user's own configuration
	buff, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, err
	}

	return ssh.ParsePrivateKey(buff)
}

// splitAddress parses "[user@]host[:port]" into a user and a dialable
// host:port.
func splitAddress(address, defaultUser string) (string, string, error) {
	if address == "" {
		return "", "", errors.New("remote address is required")
	}

	user := defaultUser
	hostPart := address

	if i := strings.LastIndex(address, "@"); i >= 0 {
		user = address[:i]
		hostPart = address[i+1:]
	}

	if user == "" {
		return "", "", fmt.Errorf("no user for %q", address)
	}

	host, port, err := net.SplitHostPort(hostPart)
	if err != nil {
		host = strings.Trim(hostPart, "[]")
		port = defaultSSHPort
	}

	if host == "" {
		return "", "", fmt.Errorf("no host in %q", address)
	}

	return user, net.JoinHostPort(host, port), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
