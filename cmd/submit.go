package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sshbatch.dev/pkg/sshbatch/internal/domain"
	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

var submitSubjectFlag string
var submitTestFlag bool
var submitAccountFlag string
var submitTemplateFlag string
var submitDryRunFlag bool

const submitLongDescription = `Resolve bids_dir and out_dir to their paths on the sshfs host and run
bidsBatch there over SSH:

  ssh <address> source ~/.bash_profile ; bidsBatch [options] app bids out level

The address may be omitted when remote.address is configured. Both
directories must exist locally and sit on an sshfs mount; otherwise nothing
is submitted.`

// submitCmd represents the submit command.
var submitCmd = newSubmitCmd()

func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [address] <app> <bids_dir> <out_dir> <participant|group>",
		Short: "Submit a bidsBatch job for directories on an sshfs mount",
		Long:  submitLongDescription,
		Args:  cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := viper.GetString(remoteAddressKey)
			if len(args) == 5 {
				address, args = args[0], args[1:]
			}

			if address == "" {
				return errors.New("no remote address: pass one or set remote.address")
			}

			level := m.AnalysisLevel(args[3])
			if !level.Valid() {
				return fmt.Errorf("invalid analysis level %q: must be %q or %q", args[3], m.LevelParticipant, m.LevelGroup)
			}

			return workflow.Submit(cmd.Context(), domain.SubmitArgs{
				Address: address,
				Request: m.ResolutionRequest{
					BidsDir: m.Path(args[1]),
					OutDir:  m.Path(args[2]),
				},
				Job: m.BatchJob{
					App:           args[0],
					AnalysisLevel: level,
					Subject:       submitSubjectFlag,
					TestMode:      submitTestFlag,
					Account:       viper.GetString(batchAccountKey),
					JobTemplate:   viper.GetString(batchJobTemplateKey),
				},
				Marker:       viper.GetString(mountsMarkerKey),
				Profile:      viper.GetString(remoteProfileKey),
				BatchCommand: viper.GetString(remoteBatchCommandKey),
				DryRun:       submitDryRunFlag,
			})
		},
	}

	configureSubmitFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(submitCmd)
}

func configureSubmitFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&submitSubjectFlag, subjectFlagName, "s", "", "participant label to process")
	cmd.Flags().BoolVarP(&submitTestFlag, testFlagName, "t", false, "forward test mode to the batch command")

	cmd.Flags().StringVarP(&submitAccountFlag, accountFlagName, "A", viper.GetString(batchAccountKey), "scheduler account")
	bindFlagToConfig(cmd.Flags().Lookup(accountFlagName), batchAccountKey)

	cmd.Flags().StringVarP(&submitTemplateFlag, templateFlagName, "j", viper.GetString(batchJobTemplateKey), "job template")
	bindFlagToConfig(cmd.Flags().Lookup(templateFlagName), batchJobTemplateKey)

	cmd.Flags().BoolVar(&submitDryRunFlag, dryRunFlagName, false, "print the remote command without running it")
}
