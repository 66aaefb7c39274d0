// pkg/logpath/candidate.go

package logpath

// State is the outcome of probing one candidate directory.
type State int

const (
	StateUntried State = iota
	// StateUnavailable: the base value was empty or relative; nothing was
	// touched.
	StateUnavailable
	// StateUnwritable: the directory exists but failed the write probe.
	StateUnwritable
	// StateSelected: the directory exists and is writable.
	StateSelected
)

func (s State) String() string {
	switch s {
	case StateUnavailable:
		return "unavailable"
	case StateUnwritable:
		return "unwritable"
	case StateSelected:
		return "selected"
	default:
		return "untried"
	}
}

// Candidate is one template resolved against the current environment.
// Dir is empty when Base is unusable.
type Candidate struct {
	Priority int
	Template Template
	Base     string
	Dir      string
	State    State
}

// Reason explains why a resolution produced no path.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNoAppName
	ReasonInvalidSegment
	ReasonUnsupportedPlatform
	ReasonExhausted
)

func (r Reason) String() string {
	switch r {
	case ReasonNoAppName:
		return "no app name"
	case ReasonInvalidSegment:
		return "invalid path segment"
	case ReasonUnsupportedPlatform:
		return "unsupported platform"
	case ReasonExhausted:
		return "no writable candidate"
	default:
		return "none"
	}
}

// Resolution is the full record of one probe.
type Resolution struct {
	Platform   Platform
	AppName    string
	Date       string
	Candidates []Candidate
	Selected   int
	Path       string
	Reason     Reason
}

func (r Resolution) OK() bool {
	return r.Path != ""
}

// SelectedCandidate returns the winning candidate, if any.
func (r Resolution) SelectedCandidate() (Candidate, bool) {
	if r.Selected < 0 || r.Selected >= len(r.Candidates) {
		return Candidate{}, false
	}
	return r.Candidates[r.Selected], true
}
