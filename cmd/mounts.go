package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sshbatch.dev/pkg/sshbatch/internal/domain"
)

// mountsCmd represents the mounts command.
var mountsCmd = newMountsCmd()

func newMountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mounts",
		Short: "List the sshfs mounts sshbatch can translate",
		Long:  "List the active sshfs mounts, as parsed from the mount listing.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Mounts(cmd.Context(), domain.MountsArgs{Marker: viper.GetString(mountsMarkerKey)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mountsCmd)
}
