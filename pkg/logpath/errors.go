// pkg/logpath/errors.go

package logpath

import "errors"

var (
	// ErrStructuralConflict: a path level that must be a directory exists as
	// something else. Fatal for the whole resolution.
	ErrStructuralConflict = errors.New("log path level exists and is not a directory")

	// ErrCreateFailed: a path level could not be created and does not exist.
	ErrCreateFailed = errors.New("cannot create log directory level")

	// Returned by Candidates; Probe reports these through Resolution.Reason.
	ErrNoAppName           = errors.New("no application name available")
	ErrInvalidSegment      = errors.New("app name and date must each be a single path segment")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
