// pkg/config/expand.go

package config

import (
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/xdg"
	"mvdan.cc/sh/v3/shell"
)

// ExpandPath expands $VAR and ${VAR} in p as a shell would inside double
// quotes, then a leading ~ to the home directory. Command substitution is
// not supported.
func ExpandPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	out, err := shell.Expand(p, nil)
	if err != nil {
		return "", logdir_err.NewValidationError("cannot expand path "+p+": "+err.Error(),
			"Use $VAR or ${VAR}; quotes and $(...) are not supported")
	}
	switch {
	case out == "~":
		out = xdg.HomeDir()
	case strings.HasPrefix(out, "~/"):
		out = filepath.Join(xdg.HomeDir(), out[2:])
	}
	return out, nil
}
