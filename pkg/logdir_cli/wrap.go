// pkg/logdir_cli/wrap.go

package logdir_cli

import (
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_io"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logger"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Wrap gives fn a RuntimeContext and adds panic recovery, lifecycle logging
// and a stack to unexpected errors.
func Wrap(fn func(rc *logdir_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := logdir_io.NewContext(cmd.Context(), cmd.Name())
		defer rc.End(&err)
		defer logger.LogCommandLifecycle(cmd.CommandPath(), rc.TraceID)(&err)
		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		if err != nil && !logdir_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
