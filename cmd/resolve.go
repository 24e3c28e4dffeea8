package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sshbatch.dev/pkg/sshbatch/internal/domain"
	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

var resolveFormatFlag string

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <paths...>",
		Short: "Print the remote path of local directories on sshfs mounts",
		Long: `Translate each local path to its location on the sshfs host.

Exits non-zero when any path does not exist, a mount is stale, or a path is
not covered by an sshfs mount.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := m.OutputFormat(resolveFormatFlag)
			if format != m.FormatTable && format != m.FormatYAML {
				return fmt.Errorf("invalid format %q: must be %q or %q", resolveFormatFlag, m.FormatTable, m.FormatYAML)
			}

			return workflow.Resolve(cmd.Context(), domain.ResolveArgs{
				Paths:  parsePaths(args),
				Marker: viper.GetString(mountsMarkerKey),
				Format: format,
			})
		},
	}

	cmd.Flags().StringVarP(&resolveFormatFlag, formatFlagName, "f", string(m.FormatTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
