// pkg/appname/appname.go

// Package appname supplies application names to the log path resolver when
// the caller does not pass one.
package appname

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Provider returns an application name, or "" when it cannot determine one.
type Provider interface {
	AppName() string
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() string

func (f ProviderFunc) AppName() string {
	return f()
}

// Static always returns name.
func Static(name string) Provider {
	return ProviderFunc(func() string { return strings.TrimSpace(name) })
}

// Env reads key from v, which covers config files and LOGDIR_* variables.
func Env(v *viper.Viper, key string) Provider {
	return ProviderFunc(func() string {
		if v == nil {
			return ""
		}
		return strings.TrimSpace(v.GetString(key))
	})
}

// Executable names the application after the running binary.
func Executable() Provider {
	return ProviderFunc(func() string {
		exe, err := os.Executable()
		if err != nil {
			return ""
		}
		return FromPath(exe)
	})
}

// FromPath derives an application name from a binary path: the base name
// without its extension.
func FromPath(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Chain returns the first non-empty name from providers, in order.
func Chain(providers ...Provider) Provider {
	return ProviderFunc(func() string {
		for _, p := range providers {
			if p == nil {
				continue
			}
			if name := strings.TrimSpace(p.AppName()); name != "" {
				return name
			}
		}
		return ""
	})
}
