package adapter

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/ssh"

	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		name        string
		address     string
		defaultUser string
		wantUser    string
		wantHost    string
		wantErr     bool
	}{
		{"user and host", "me@graham.computecanada.ca", "", "me", "graham.computecanada.ca:22", false},
		{"default user", "graham", "you", "you", "graham:22", false},
		{"explicit port", "me@host:2222", "", "me", "host:2222", false},
		{"ipv6 with port", "me@[::1]:2222", "", "me", "[::1]:2222", false},
		{"ipv6 without port", "me@[::1]", "", "me", "[::1]:22", false},
		{"no user", "host", "", "", "", true},
		{"no host", "me@", "", "", "", true},
		{"empty", "", "me", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, host, err := splitAddress(tt.address, tt.defaultUser)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("splitAddress(%q) expected error", tt.address)
				}

				return
			}

			if err != nil {
				t.Fatalf("splitAddress(%q) error = %v", tt.address, err)
			}

			if user != tt.wantUser || host != tt.wantHost {
				t.Fatalf("splitAddress(%q) = (%q, %q), want (%q, %q)", tt.address, user, host, tt.wantUser, tt.wantHost)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	if got := expandHome("~/.ssh/known_hosts"); got != filepath.Join(home, ".ssh", "known_hosts") {
		t.Fatalf("expandHome() = %q", got)
	}

	if got := expandHome("/etc/ssh/known_hosts"); got != "/etc/ssh/known_hosts" {
		t.Fatalf("expandHome() changed an absolute path: %q", got)
	}
}

func TestSSHRemoteRunnerAdapter_RequiresAuth(t *testing.T) {
	adapter := NewSSHRemoteRunnerAdapter(SSHOptions{KnownHostsFile: filepath.Join(t.TempDir(), "known_hosts")})

	err := adapter.Run(context.Background(), m.RemoteCommand{Address: "me@127.0.0.1:1", Argv: []string{"true"}}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "authentication") {
		t.Fatalf("Run() error = %v, want missing authentication error", err)
	}
}

func TestSSHRemoteRunnerAdapter_BadIdentity(t *testing.T) {
	key := filepath.Join(t.TempDir(), "id_bad")
	if err := os.WriteFile(key, []byte("not a key"), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	adapter := NewSSHRemoteRunnerAdapter(SSHOptions{IdentityFile: key})

	err := adapter.Run(context.Background(), m.RemoteCommand{Address: "me@127.0.0.1:1"}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "failed to load identity") {
		t.Fatalf("Run() error = %v, want identity error", err)
	}
}

// writeIdentity stores a fresh ed25519 key in OpenSSH format.
func writeIdentity(t *testing.T, dir string) string {
	t.Helper()

	_, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	block, err := ssh.MarshalPrivateKey(private, "")
	if err != nil {
		t.Fatalf("marshal key: %v", err)
	}

	key := filepath.Join(dir, "id_ed25519")
	if err := os.WriteFile(key, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	return key
}

func writeKnownHosts(t *testing.T, dir string) string {
	t.Helper()

	knownHosts := filepath.Join(dir, "known_hosts")
	if err := os.WriteFile(knownHosts, nil, 0o600); err != nil {
		t.Fatalf("write known_hosts: %v", err)
	}

	return knownHosts
}

func TestSSHRemoteRunnerAdapter_UnreachableAgentFallsBackToIdentity(t *testing.T) {
	dir := t.TempDir()

	adapter := NewSSHRemoteRunnerAdapter(SSHOptions{
		IdentityFile:   writeIdentity(t, dir),
		AgentSocket:    filepath.Join(dir, "no-agent.sock"),
		KnownHostsFile: writeKnownHosts(t, dir),
	})

	config, closeAgent, err := adapter.clientConfig("me")
	if err != nil {
		t.Fatalf("clientConfig() error = %v", err)
	}

	defer closeAgent()

	if len(config.Auth) != 1 {
		t.Fatalf("clientConfig() auth methods = %d, want 1", len(config.Auth))
	}
}

func TestSSHRemoteRunnerAdapter_UnreachableAgentAlone(t *testing.T) {
	dir := t.TempDir()

	adapter := NewSSHRemoteRunnerAdapter(SSHOptions{
		AgentSocket:    filepath.Join(dir, "no-agent.sock"),
		KnownHostsFile: writeKnownHosts(t, dir),
	})

	_, _, err := adapter.clientConfig("me")
	if err == nil || !strings.Contains(err.Error(), "ssh agent") {
		t.Fatalf("clientConfig() error = %v, want agent error", err)
	}
}

func TestSSHRemoteRunnerAdapter_ClosesAgentConnection(t *testing.T) {
	dir := t.TempDir()
	socket := filepath.Join(dir, "agent.sock")

	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}

	defer func() { _ = listener.Close() }()

	closed := make(chan struct{})

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}

		// Read blocks until the client side closes the connection.
		_, _ = conn.Read(make([]byte, 1))
		_ = conn.Close()
		close(closed)
	}()

	adapter := NewSSHRemoteRunnerAdapter(SSHOptions{
		AgentSocket:    socket,
		KnownHostsFile: writeKnownHosts(t, dir),
	})

	_, closeAgent, err := adapter.clientConfig("me")
	if err != nil {
		t.Fatalf("clientConfig() error = %v", err)
	}

	closeAgent()

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("agent connection was not closed")
	}
}
