// pkg/cli/cli.go
//
// Flag helpers shared by logdir's cobra commands. Flags are bound to a viper
// instance so every option can also come from LOGDIR_* variables or the
// config file.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AddStringFlag adds a string flag and optionally marks as required.
// Env/Config are handled by Viper if you call BindFlagsToViper.
func AddStringFlag(cmd *cobra.Command, name, shorthand, def, help string, required bool) {
	cmd.Flags().StringP(name, shorthand, def, help)
	if required {
		if err := cmd.MarkFlagRequired(name); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to mark flag %s as required: %v\n", name, err)
		}
	}
}

// AddBoolFlag adds a boolean flag.
func AddBoolFlag(cmd *cobra.Command, name, shorthand string, def bool, help string) {
	cmd.Flags().BoolP(name, shorthand, def, help)
}

// BindFlagsToViper binds flags to v under their config key: dashes become
// underscores, so --log-level feeds log_level.
func BindFlagsToViper(flags *pflag.FlagSet, v *viper.Viper) error {
	var result error
	flags.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(ConfigKey(f.Name), f); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result
}

// ConfigKey maps a flag name to its viper key.
func ConfigKey(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}

// GetStringOrEmpty returns the string value or empty string if error.
func GetStringOrEmpty(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to get flag %s: %v\n", name, err)
		return ""
	}
	return val
}

// GetBoolOrFalse returns the bool value or false if error.
func GetBoolOrFalse(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to get flag %s: %v\n", name, err)
		return false
	}
	return val
}
