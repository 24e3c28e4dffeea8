package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sshbatch.dev/pkg/sshbatch/internal/domain"
	domainmocks "sshbatch.dev/pkg/sshbatch/internal/domain/mocks"
	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

func executeResolve(t *testing.T, mockWorkflow *domainmocks.MockWorkflow, args ...string) error {
	t.Helper()

	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newResolveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"resolve"}, args...))

	return cmd.Execute()
}

func TestResolveCmd_Paths(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.EXPECT().Resolve(mock.Anything, domain.ResolveArgs{
		Paths:  []m.Path{"/mnt/graham/bids", "out"},
		Marker: "sshfs",
		Format: m.FormatTable,
	}).Return(nil).Once()

	require.NoError(t, executeResolve(t, mockWorkflow, "/mnt/graham/bids", "out"))
}

func TestResolveCmd_YAML(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.EXPECT().Resolve(mock.Anything, mock.MatchedBy(func(args domain.ResolveArgs) bool {
		return args.Format == m.FormatYAML
	})).Return(nil).Once()

	require.NoError(t, executeResolve(t, mockWorkflow, "--format", "yaml", "bids"))
}

func TestResolveCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no paths", nil},
		{"unknown format", []string{"--format", "json", "bids"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			require.Error(t, executeResolve(t, mockWorkflow, tt.args...))
			mockWorkflow.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
		})
	}
}
