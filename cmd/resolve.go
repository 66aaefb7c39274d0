// cmd/resolve.go

package cmd

import (
	"errors"
	"fmt"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_cli"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_io"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logpath"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newResolveCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the log file path for an application",
		Long: `Resolve walks the platform's candidate directories, creates the first
usable one and prints <dir>/log.log.

Examples:
  logdir resolve --app my-app
  logdir resolve --app my-app --today
  LOGDIR_APP_NAME=my-app logdir resolve --date 2026-10-18`,
		Args: cobra.NoArgs,
		RunE: logdir_cli.Wrap(func(rc *logdir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			app, date, err := s.probeArgs(cmd)
			if err != nil {
				return err
			}

			res, err := s.resolver(rc).Probe(app, date)
			annotate(rc, res)
			if err != nil {
				return blockedError(err)
			}
			if !res.OK() {
				return reasonError(res)
			}

			rc.CtxLog().Info("Resolved log path", zap.String("path", res.Path))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			return err
		}),
	}
	addProbeFlags(cmd)
	return cmd
}

func annotate(rc *logdir_io.RuntimeContext, res logpath.Resolution) {
	rc.Attributes["platform"] = res.Platform.String()
	rc.Attributes["app_name"] = res.AppName
	rc.Attributes["candidates"] = fmt.Sprint(len(res.Candidates))
	if res.OK() {
		rc.Attributes["path"] = res.Path
	} else {
		rc.Attributes["reason"] = res.Reason.String()
	}
}

// reasonError maps an ok=false resolution to a classified error. A blocked
// write probe is reported as a permission problem. These are expected
// outcomes, not failures of logdir itself.
func reasonError(res logpath.Resolution) error {
	return logdir_err.NewExpectedError(classifyReason(res))
}

func classifyReason(res logpath.Resolution) error {
	switch res.Reason {
	case logpath.ReasonNoAppName:
		return logdir_err.NewValidationError("no application name",
			"Pass --app NAME or set LOGDIR_APP_NAME")
	case logpath.ReasonInvalidSegment:
		return logdir_err.NewValidationError(
			fmt.Sprintf("invalid application name %q or date %q", res.AppName, res.Date),
			"Application name and date must each be a single directory name")
	case logpath.ReasonUnsupportedPlatform:
		return logdir_err.NewNotFoundError(
			fmt.Sprintf("no log directory profile for platform %s", res.Platform),
			"Supported platforms are listed by 'logdir platforms'")
	}
	for _, c := range res.Candidates {
		if c.State == logpath.StateUnwritable {
			return logdir_err.NewPermissionError(c.Dir, "write to",
				"Run 'logdir candidates' to see which directories were tried",
				"Fix the permissions of "+c.Dir+" or set XDG_CONFIG_HOME to a writable directory")
		}
	}
	return logdir_err.NewNotFoundError(
		fmt.Sprintf("no writable log directory for %s on %s", res.AppName, res.Platform),
		"Set HOME or XDG_CONFIG_HOME to an absolute path")
}

// blockedError classifies a fatal resolution error, keeping the sentinel
// reachable through errors.Is.
func blockedError(err error) error {
	remediation := logdir_err.Hints(err)
	if errors.Is(err, logpath.ErrStructuralConflict) {
		remediation = append(remediation, "Move the file out of the way, then retry")
	}
	return logdir_err.NewFilesystemError("log directory is blocked", err, remediation...)
}
