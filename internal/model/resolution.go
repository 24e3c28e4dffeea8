package model

// ResolutionStatus tags the outcome of resolving one local path.
type ResolutionStatus int

const (
	// Resolved means a covering mount was found and the remote path computed.
	Resolved ResolutionStatus = iota
	// Unresolved means no mount covers the path.
	Unresolved
	// Failed means the environment prevented resolution (missing path, stale mount).
	Failed
)

// String returns a lower-case label for the status.
func (s ResolutionStatus) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Unresolved:
		return "unresolved"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ReasonNoCoveringMount is the reason reported for Unresolved results.
const ReasonNoCoveringMount = "no covering mount"

// Resolution is the result of translating one local path to a remote path.
type Resolution struct {
	Local     Path
	Canonical Path
	Status    ResolutionStatus
	Remote    string
	Mount     *MountEntry
	Reason    string
	Err       error
}

// IsResolved reports whether Remote holds a usable path.
func (r Resolution) IsResolved() bool {
	return r.Status == Resolved
}

// ResolutionRequest is the pair of local directories a batch job needs on the
// remote host.
type ResolutionRequest struct {
	BidsDir Path
	OutDir  Path
}

// ResolvedPair holds the remote equivalents of a ResolutionRequest.
type ResolvedPair struct {
	BidsDir Resolution
	OutDir  Resolution
}
