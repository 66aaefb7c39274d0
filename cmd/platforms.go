// cmd/platforms.go

package cmd

import (
	"fmt"
	"runtime"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_cli"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_io"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logpath"
	"github.com/spf13/cobra"
)

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List candidate directory templates per platform",
		Args:  cobra.NoArgs,
		RunE: logdir_cli.Wrap(func(rc *logdir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			current := logpath.PlatformFor(runtime.GOOS)
			for _, p := range logpath.Platforms() {
				label := p.String()
				if p == current {
					label += " (current)"
				}
				fmt.Fprintf(w, "%s:\n", label)
				for i, t := range logpath.Profile(p) {
					fmt.Fprintf(w, "  %d. %s/%s\n", i+1, t.Pattern(), logpath.LogFileName)
				}
			}
			return nil
		}),
	}
}
