// cmd/flags.go

package cmd

import (
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logpath"
	"github.com/spf13/cobra"
)

func addProbeFlags(cmd *cobra.Command) {
	cli.AddStringFlag(cmd, "app", "a", "", "application name (default: app_name setting, then the executable name)", false)
	cli.AddStringFlag(cmd, "date", "d", "", "date segment appended below the logs directory", false)
	cli.AddBoolFlag(cmd, "today", "", false, "use today's date, formatted with date_format, as the date segment")
	cmd.MarkFlagsMutuallyExclusive("date", "today")
}

// probeArgs reads --app and the date segment from --date or --today.
func (s *state) probeArgs(cmd *cobra.Command) (app, date string, err error) {
	app = cli.GetStringOrEmpty(cmd, "app")
	if app != "" && !logpath.IsPathSegment(app) {
		return "", "", logdir_err.NewExpectedError(logdir_err.NewValidationError("invalid --app value "+app,
			"Application names must be a single directory name"))
	}

	date = cli.GetStringOrEmpty(cmd, "date")
	if cli.GetBoolOrFalse(cmd, "today") {
		date = s.cfg.Today(s.now())
	}
	if date != "" && !logpath.IsPathSegment(date) {
		return "", "", logdir_err.NewExpectedError(logdir_err.NewValidationError("invalid --date value "+date,
			"The date segment must be a single directory name, e.g. 2026-10-18"))
	}
	return app, date, nil
}
