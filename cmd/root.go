// Package cmd provides the root command and CLI setup for sshbatch.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sshbatch.dev/pkg/sshbatch/internal/adapter"
	"sshbatch.dev/pkg/sshbatch/internal/controller"
	"sshbatch.dev/pkg/sshbatch/internal/domain"
	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// Built on first use, after flags and configuration are loaded. Tests swap
// workflow for a mock before executing a command.
var workflow domain.Workflow
var ui controller.UI

var verboseFlag bool
var logFileFlag string
var markerFlag string
var transportFlag string

const rootLongDescription = `sshbatch translates local directories that live on sshfs mounts into
their paths on the remote host, and submits bidsBatch jobs there over SSH.

Mounts are read from the local mount table (findmnt -l by default); only
entries whose line mentions the mount marker (sshfs) are considered. A path
that is not on an sshfs mount is never submitted.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "sshbatch",
		Short:        "Submit batch jobs for directories on sshfs mounts",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if isStandalone(cmd) {
				configureLogger(logSettingsFromConfig())
				return nil
			}

			settings, err := loadSettings()
			if err != nil {
				return err
			}

			configureLogger(settings.Log)

			return buildWorkflow(cmd, settings)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().StringVar(&markerFlag, markerFlagName, viper.GetString(mountsMarkerKey), "substring identifying sshfs lines in the mount listing")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(markerFlagName), mountsMarkerKey)

	cmd.PersistentFlags().StringVar(&transportFlag, transportFlagName, viper.GetString(remoteTransportKey), "remote transport: exec (ssh client) or native")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(transportFlagName), remoteTransportKey)
}

// standaloneAnnotation marks commands that must work without a valid
// configuration, such as init which writes a fresh one.
const standaloneAnnotation = "sshbatch.standalone"

func isStandalone(cmd *cobra.Command) bool {
	_, ok := cmd.Annotations[standaloneAnnotation]
	return ok
}

// buildWorkflow wires the adapters for settings unless a workflow is
// already set.
func buildWorkflow(cmd *cobra.Command, settings Settings) error {
	if workflow != nil {
		return nil
	}

	user := settings.Remote.User
	if user == "" {
		user = os.Getenv("USER")
	}

	runner, err := adapter.NewRemoteRunnerAdapter(adapter.RemoteRunnerOptions{
		Transport:  settings.Remote.Transport,
		SSHCommand: settings.Remote.SSHCommand,
		SSH: adapter.SSHOptions{
			User:           user,
			IdentityFile:   settings.Remote.IdentityFile,
			AgentSocket:    os.Getenv("SSH_AUTH_SOCK"),
			KnownHostsFile: settings.Remote.KnownHosts,
		},
	})
	if err != nil {
		return err
	}

	ui = controller.NewUI(cmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(
		adapter.NewLocalMountListerAdapter(settings.Mounts.Command),
		domain.NewResolver(adapter.NewLocalPathFSAdapter()),
		runner,
		ui,
	)

	return nil
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
