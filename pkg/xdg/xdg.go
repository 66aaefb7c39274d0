// pkg/xdg/xdg.go

package xdg

import (
	"os"
	"path/filepath"
)

// Base-directory environment variables read by the log path profiles.
const (
	EnvConfigHome = "XDG_CONFIG_HOME"
	EnvDataHome   = "XDG_DATA_HOME"
	EnvAppData    = "APPDATA"
	EnvHome       = "HOME"
)

func GetEnvOrDefault(envVar, fallback string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return fallback
}

// HomeDir returns the user's home directory. When the platform lookup fails
// it falls back to $HOME, which may itself be empty.
func HomeDir() string {
	return HomeDirFrom(os.UserHomeDir, os.Getenv)
}

// HomeDirFrom is HomeDir with its lookups supplied by the caller.
func HomeDirFrom(userHome func() (string, error), getenv func(string) string) string {
	if userHome != nil {
		if home, err := userHome(); err == nil && home != "" {
			return home
		}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	return getenv(EnvHome)
}

func XDGConfigPath(app, file string) string {
	base := GetEnvOrDefault(EnvConfigHome, filepath.Join(HomeDir(), ".config"))
	return filepath.Join(base, app, file)
}
