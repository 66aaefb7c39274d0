package logdir_cli

import (
	"errors"
	"testing"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_io"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, fn func(rc *logdir_io.RuntimeContext, cmd *cobra.Command, args []string) error) error {
	t.Helper()
	cmd := &cobra.Command{Use: "probe", RunE: Wrap(fn), SilenceErrors: true, SilenceUsage: true}
	cmd.SetArgs([]string{})
	return cmd.Execute()
}

func TestWrapSuccess(t *testing.T) {
	var got *logdir_io.RuntimeContext
	err := run(t, func(rc *logdir_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		got = rc
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "probe", got.Command)
}

func TestWrapKeepsClassification(t *testing.T) {
	err := run(t, func(*logdir_io.RuntimeContext, *cobra.Command, []string) error {
		return logdir_err.NewValidationError("bad input")
	})
	require.Error(t, err)
	assert.Equal(t, 2, logdir_err.GetExitCode(err))
}

func TestWrapExpectedErrorUntouched(t *testing.T) {
	expected := logdir_err.NewExpectedError(errors.New("nothing to do"))
	err := run(t, func(*logdir_io.RuntimeContext, *cobra.Command, []string) error {
		return expected
	})
	assert.Same(t, expected, err)
}

func TestWrapRecoversPanic(t *testing.T) {
	err := run(t, func(*logdir_io.RuntimeContext, *cobra.Command, []string) error {
		panic("kaboom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}
