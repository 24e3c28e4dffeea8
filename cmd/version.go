package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Annotations: map[string]string{standaloneAnnotation: "true"},
		Short:       "Show the sshbatch version",
		Long:        "Displays the sshbatch build version and the Go version it was built with.",
		Args:        cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("sshbatch version: unknown")
				return
			}

			cmd.Println("sshbatch\t", info.Main.Version)
			cmd.Println("go\t\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
