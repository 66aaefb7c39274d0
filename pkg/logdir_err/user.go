// pkg/logdir_err/user.go

package logdir_err

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

var debugMode bool

func SetDebugMode(enabled bool) {
	debugMode = enabled
}

func DebugEnabled() bool {
	return debugMode
}

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// PrintError prints a human-readable error message to stderr without exiting.
func PrintError(userMessage string, err error) {
	FprintError(os.Stderr, userMessage, err)
}

// FprintError is PrintError writing to w. Expected errors print as a notice.
// The logger only records the error at debug level so the console shows it
// once.
func FprintError(w io.Writer, userMessage string, err error) {
	if err == nil {
		return
	}

	zap.L().Debug(userMessage, zap.Error(err))
	if IsExpectedUserError(err) {
		fmt.Fprintf(w, "Notice: %s: %v\n", userMessage, err)
		return
	}

	if DebugEnabled() {
		fmt.Fprintf(w, "Error: %s: %+v\n", userMessage, err)
		return
	}
	fmt.Fprintf(w, "Error: %s: %v\n", userMessage, err)
}
