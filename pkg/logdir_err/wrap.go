// pkg/logdir_err/wrap.go

package logdir_err

import (
	cerr "github.com/cockroachdb/errors"
)

func WrapValidationError(err error) error {
	return cerr.WithHint(cerr.WithStack(err), "validation failed")
}

// WrapFilesystemError attaches a stack and a hint naming the offending path.
func WrapFilesystemError(err error, path string) error {
	if err == nil {
		return nil
	}
	return cerr.WithHintf(cerr.WithStack(err), "check the filesystem entry at %s", path)
}

// Hints returns the hints attached anywhere in the error chain.
func Hints(err error) []string {
	return cerr.GetAllHints(err)
}
