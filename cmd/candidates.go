// cmd/candidates.go

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_cli"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_io"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logpath"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	colorSelected = lipgloss.Color("#00ff00")
	colorBlocked  = lipgloss.Color("#ffaa00")
	colorMuted    = lipgloss.Color("#666666")
)

func newCandidatesCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Probe and list every candidate log directory",
		Long: `Candidates runs the same resolution as 'resolve' and prints every
candidate directory with its state. The selected directory is starred;
candidates after it are left untried.`,
		Args: cobra.NoArgs,
		RunE: logdir_cli.Wrap(func(rc *logdir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			app, date, err := s.probeArgs(cmd)
			if err != nil {
				return err
			}

			res, err := s.resolver(rc).Probe(app, date)
			annotate(rc, res)
			if len(res.Candidates) == 0 {
				if err != nil {
					return blockedError(err)
				}
				return reasonError(res)
			}

			if werr := writeCandidates(cmd.OutOrStdout(), res); werr != nil {
				return werr
			}
			if err != nil {
				return blockedError(err)
			}
			return nil
		}),
	}
	addProbeFlags(cmd)
	return cmd
}

func writeCandidates(w io.Writer, res logpath.Resolution) error {
	fmt.Fprintf(w, "Log directories for %s on %s:\n", res.AppName, res.Platform)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "#", "STATE", "DIRECTORY")

	for i, c := range res.Candidates {
		mark := ""
		if i == res.Selected {
			mark = "*"
		}
		dir := c.Dir
		switch {
		case c.Base == "":
			dir = c.Template.Pattern() + " (" + c.Template.Base.String() + " unset)"
		case c.Dir == "":
			dir = c.Template.Pattern() + " (" + c.Template.Base.String() + " is relative: " + c.Base + ")"
		}
		t.Row(mark, strconv.Itoa(c.Priority), stateStyle(c.State).Render(c.State.String()), dir)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if res.OK() {
		_, err := fmt.Fprintf(w, "Log file: %s\n", res.Path)
		return err
	}
	return nil
}

func stateStyle(s logpath.State) lipgloss.Style {
	switch s {
	case logpath.StateSelected:
		return lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
	case logpath.StateUnwritable:
		return lipgloss.NewStyle().Foreground(colorBlocked)
	default:
		return lipgloss.NewStyle().Foreground(colorMuted)
	}
}
