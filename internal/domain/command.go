package domain

import (
	"errors"
	"fmt"

	"github.com/alessio/shellescape"

	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// Defaults for the remote side of a submission.
const (
	DefaultProfile      = "~/.bash_profile"
	DefaultBatchCommand = "bidsBatch"
)

// BuildRemoteCommand renders the remote shell line for job:
//
//	source <profile> ; <batch> [-s subj] [-t] [-A account] [-j template] app bids out level
//
// Values are shell-quoted since ssh hands the joined argv to the remote shell.
// The profile is left as given so '~' still expands remotely.
func BuildRemoteCommand(address, profile, batchCommand string, job m.BatchJob) (m.RemoteCommand, error) {
	if address == "" {
		return m.RemoteCommand{}, errors.New("remote address is required")
	}

	if job.App == "" {
		return m.RemoteCommand{}, errors.New("app is required")
	}

	if !job.AnalysisLevel.Valid() {
		return m.RemoteCommand{}, fmt.Errorf("invalid analysis level %q: must be %q or %q",
			job.AnalysisLevel, m.LevelParticipant, m.LevelGroup)
	}

	if job.BidsDir == "" || job.OutDir == "" {
		return m.RemoteCommand{}, errors.New("remote bids and output directories are required")
	}

	if profile == "" {
		profile = DefaultProfile
	}

	if batchCommand == "" {
		batchCommand = DefaultBatchCommand
	}

	argv := []string{"source", profile, ";", batchCommand}

	if job.Subject != "" {
		argv = append(argv, "-s", shellescape.Quote(job.Subject))
	}

	if job.TestMode {
		argv = append(argv, "-t")
	}

	if job.Account != "" {
		argv = append(argv, "-A", shellescape.Quote(job.Account))
	}

	if job.JobTemplate != "" {
		argv = append(argv, "-j", shellescape.Quote(job.JobTemplate))
	}

	argv = append(argv,
		shellescape.Quote(job.App),
		shellescape.Quote(job.BidsDir),
		shellescape.Quote(job.OutDir),
		string(job.AnalysisLevel),
	)

	return m.RemoteCommand{Address: address, Argv: argv}, nil
}
