/* cmd/root.go */

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/appname"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/config"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_cli"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_io"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logpath"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// state is shared by one command tree.
type state struct {
	v          *viper.Viper
	cfg        *config.Config
	configFile string
	shutdown   telemetry.Shutdown
	stderr     io.Writer
	now        func() time.Time
}

// NewRootCmd builds the logdir command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&state{
		v:   config.NewViper(),
		now: time.Now,
	})
}

func newRootCmd(s *state) *cobra.Command {
	root := &cobra.Command{
		Use:   "logdir",
		Short: "Resolve a writable, platform-appropriate log file location",
		Long: `logdir finds where an application should write its log file.

It walks the platform's candidate directories in priority order, creates the
first usable one and prints <dir>/log.log.

  linux:   $XDG_CONFIG_HOME, ~/.config, $XDG_DATA_HOME, ~/.local/share
  macOS:   ~/Library/Logs, ~/Library/Application Support
  windows: %APPDATA%, ~/AppData/Roaming`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  s.setup,
		PersistentPostRunE: s.teardown,
		RunE: logdir_cli.Wrap(func(rc *logdir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			return cmd.Help()
		}),
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/logdir/config.yaml)")
	flags.String("log-level", config.DefaultLogLevel, "diagnostic log level (debug, info, warn, error)")
	flags.Bool("log-to-file", false, "also write diagnostics to logdir's own log file")
	flags.Bool("trace", false, "print OpenTelemetry spans to stderr")
	if err := cli.BindFlagsToViper(flags, s.v); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to bind flags: %v\n", err)
	}

	root.AddCommand(
		newResolveCmd(s),
		newCandidatesCmd(s),
		newPlatformsCmd(),
	)
	return root
}

func (s *state) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(s.v, s.configFile)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.stderr = cmd.ErrOrStderr()
	logdir_err.SetDebugMode(logger.ParseLogLevel(cfg.LogLevel) == zapcore.DebugLevel)

	logger.InitializeWithFallback(logger.Options{
		Level:   cfg.LogLevel,
		ToFile:  cfg.LogToFile,
		Console: s.stderr,
	})

	shutdown, err := telemetry.Init("logdir", cfg.Trace, s.stderr)
	if err != nil {
		logger.L().Warn("Tracing disabled", zap.Error(err))
		shutdown = nil
	}
	s.shutdown = shutdown
	return nil
}

func (s *state) teardown(cmd *cobra.Command, args []string) error {
	if s.shutdown == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.shutdown(ctx)
}

// resolver builds a LogPathResolver for the current process. Names fall back
// to the app_name setting, then the executable name.
func (s *state) resolver(rc *logdir_io.RuntimeContext) *logpath.Resolver {
	return &logpath.Resolver{
		Names: appname.Chain(
			appname.Env(s.v, config.KeyAppName),
			appname.Executable(),
		),
		Log: rc.Log,
	}
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()

	if err != nil {
		logdir_err.PrintError("logdir failed", err)
	}
	if syncErr := logger.Sync(); syncErr != nil {
		fmt.Fprintf(os.Stderr, "Failed to flush logs: %v\n", syncErr)
	}
	return logdir_err.GetExitCode(err)
}
