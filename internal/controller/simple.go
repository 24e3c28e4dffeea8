package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// SimpleUI implements UI on top of a cobra Command's output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewUI returns the UI for cmd. Status words are coloured when tty is true.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

var (
	resolvedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	unresolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	failedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	commandStyle    = lipgloss.NewStyle().Faint(true)
)

// DisplayMountTable prints the sshfs mounts in listing order.
func (s *SimpleUI) DisplayMountTable(ctx context.Context, table m.MountTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if table.Len() == 0 {
		s.printf("No sshfs mounts found\n")
		return nil
	}

	s.printf("%s", renderMountTable(table))

	return nil
}

func renderMountTable(table m.MountTable) string {
	var tableBuffer bytes.Buffer

	writer := newTable(&tableBuffer, []string{"Local Root", "Host", "Remote Root"})

	for _, entry := range table.Entries() {
		remoteRoot := entry.RemoteRoot()
		if remoteRoot == "" {
			remoteRoot = "~"
		}

		writer.Append([]string{string(entry.LocalRoot), entry.RemoteHost(), remoteRoot})
	}

	writer.SetFooter([]string{fmt.Sprintf("Total Mounts %d", table.Len()), "", ""})
	writer.Render()

	return tableBuffer.String()
}

// DisplayResolutions prints each local path with its remote translation.
func (s *SimpleUI) DisplayResolutions(ctx context.Context, resolutions []m.Resolution, format m.OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case m.FormatYAML:
		out, err := renderResolutionsYAML(resolutions)
		if err != nil {
			return err
		}

		s.printf("%s", out)
	case "", m.FormatTable:
		s.printf("%s", s.renderResolutionTable(resolutions))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	return nil
}

func (s *SimpleUI) renderResolutionTable(resolutions []m.Resolution) string {
	var tableBuffer bytes.Buffer

	writer := newTable(&tableBuffer, []string{"Local", "Remote", "Status"})

	for _, resolution := range resolutions {
		remote := resolution.Remote
		if !resolution.IsResolved() {
			remote = resolution.Reason
		}

		writer.Append([]string{string(resolution.Local), remote, s.formatStatus(resolution.Status)})
	}

	writer.Render()

	return tableBuffer.String()
}

type resolutionRow struct {
	Local     string `yaml:"local"`
	Canonical string `yaml:"canonical,omitempty"`
	Status    string `yaml:"status"`
	Remote    string `yaml:"remote,omitempty"`
	Mount     string `yaml:"mount,omitempty"`
	Reason    string `yaml:"reason,omitempty"`
}

func renderResolutionsYAML(resolutions []m.Resolution) (string, error) {
	rows := make([]resolutionRow, 0, len(resolutions))

	for _, resolution := range resolutions {
		row := resolutionRow{
			Local:     string(resolution.Local),
			Canonical: string(resolution.Canonical),
			Status:    resolution.Status.String(),
			Remote:    resolution.Remote,
			Reason:    resolution.Reason,
		}

		if resolution.Mount != nil {
			row.Mount = string(resolution.Mount.LocalRoot)
		}

		rows = append(rows, row)
	}

	out, err := yaml.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("failed to encode resolutions: %w", err)
	}

	return string(out), nil
}

// DisplayRemoteCommand shows the command about to be sent, or that would be
// sent in a dry run.
func (s *SimpleUI) DisplayRemoteCommand(ctx context.Context, command m.RemoteCommand, dryRun bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := command.Address + " " + strings.Join(command.Argv, " ")
	if s.styled {
		line = commandStyle.Render(line)
	}

	if dryRun {
		s.printf("Dry run, not submitting: %s\n", line)
		return nil
	}

	s.printf("Submitting: %s\n", line)

	return nil
}

// Streams returns the command's stdout and stderr.
func (s *SimpleUI) Streams() (io.Writer, io.Writer) {
	return s.cmd.OutOrStdout(), s.cmd.ErrOrStderr()
}

func (s *SimpleUI) formatStatus(status m.ResolutionStatus) string {
	label := status.String()
	if !s.styled {
		return label
	}

	switch status {
	case m.Resolved:
		return resolvedStyle.Render(label)
	case m.Unresolved:
		return unresolvedStyle.Render(label)
	default:
		return failedStyle.Render(label)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}
