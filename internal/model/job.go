package model

// AnalysisLevel is the bidsBatch analysis level.
type AnalysisLevel string

const (
	// LevelParticipant runs the app once per participant.
	LevelParticipant AnalysisLevel = "participant"
	// LevelGroup runs the app over the whole dataset.
	LevelGroup AnalysisLevel = "group"
)

// Valid reports whether the level is one bidsBatch accepts.
func (l AnalysisLevel) Valid() bool {
	return l == LevelParticipant || l == LevelGroup
}

// BatchJob describes a bidsBatch submission with paths already translated to
// the remote host.
type BatchJob struct {
	App           string
	BidsDir       string
	OutDir        string
	AnalysisLevel AnalysisLevel
	Subject       string // -s, single-subject mode
	TestMode      bool   // -t, don't actually submit
	Account       string // -A
	JobTemplate   string // -j
}

// RemoteCommand is a command line destined for a remote shell.
type RemoteCommand struct {
	Address string
	Argv    []string
}
