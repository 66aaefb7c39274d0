package xdg

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeDirFrom(t *testing.T) {
	t.Parallel()

	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}

	tests := []struct {
		name     string
		userHome func() (string, error)
		getenv   func(string) string
		want     string
	}{
		{
			name:     "platform_lookup_wins",
			userHome: func() (string, error) { return "/home/alice", nil },
			getenv:   env(map[string]string{"HOME": "/home/other"}),
			want:     "/home/alice",
		},
		{
			name:     "falls_back_to_home_env",
			userHome: func() (string, error) { return "", errors.New("no home") },
			getenv:   env(map[string]string{"HOME": "/home/fallback"}),
			want:     "/home/fallback",
		},
		{
			name:     "nil_lookup_uses_env",
			userHome: nil,
			getenv:   env(map[string]string{"HOME": "/srv/home"}),
			want:     "/srv/home",
		},
		{
			name:     "nothing_available",
			userHome: func() (string, error) { return "", errors.New("no home") },
			getenv:   env(nil),
			want:     "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HomeDirFrom(tt.userHome, tt.getenv))
		})
	}
}

func TestXDGConfigPath(t *testing.T) {
	t.Setenv(EnvConfigHome, "/tmp/xdg-config")
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "logdir", "config.yaml"), XDGConfigPath("logdir", "config.yaml"))
}

func TestXDGConfigPathDefault(t *testing.T) {
	t.Setenv(EnvConfigHome, "")
	got := XDGConfigPath("logdir", "config.yaml")
	assert.Contains(t, got, filepath.Join(".config", "logdir", "config.yaml"))
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("LOGDIR_TEST_VAR", "")
	assert.Equal(t, "fallback", GetEnvOrDefault("LOGDIR_TEST_VAR", "fallback"))
	t.Setenv("LOGDIR_TEST_VAR", "set")
	assert.Equal(t, "set", GetEnvOrDefault("LOGDIR_TEST_VAR", "fallback"))
}
