package logpath

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirLevels(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("unix path layout")
	}

	tests := []struct {
		name string
		dir  string
		want []string
	}{
		{name: "absolute", dir: "/var/log/app", want: []string{"/var", "/var/log", "/var/log/app"}},
		{name: "trailing_slash", dir: "/var/log/", want: []string{"/var", "/var/log"}},
		{name: "double_slash", dir: "//srv//logs", want: []string{"/srv", "/srv/logs"}},
		{name: "relative", dir: "logs/app", want: []string{"logs", "logs/app"}},
		{name: "root", dir: "/", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dirLevels(tt.dir))
		})
	}
}

func TestMakeDirLevels(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "a", "b", "c")

	require.NoError(t, makeDirLevels(dir, 0755))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// existing directories are accepted
	require.NoError(t, makeDirLevels(dir, 0755))
}

func TestMakeDirLevels_FileInTheWay(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "a")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := makeDirLevels(filepath.Join(blocker, "b"), 0755)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStructuralConflict))
	assert.Contains(t, err.Error(), "regular file")

	_, statErr := os.Stat(filepath.Join(blocker, "b"))
	assert.Error(t, statErr)
}

func TestMakeDirLevels_SymlinkToDirectory(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	tmp := t.TempDir()
	target := filepath.Join(tmp, "target")
	require.NoError(t, os.Mkdir(target, 0755))
	link := filepath.Join(tmp, "link")
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, makeDirLevels(filepath.Join(link, "logs"), 0755))
	_, err := os.Stat(filepath.Join(target, "logs"))
	assert.NoError(t, err)
}

func TestMakeDirLevels_SymlinkInTheWay(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	tests := []struct {
		name   string
		target func(t *testing.T, tmp string) string
	}{
		{
			name: "to_file",
			target: func(t *testing.T, tmp string) string {
				f := filepath.Join(tmp, "file")
				require.NoError(t, os.WriteFile(f, nil, 0644))
				return f
			},
		},
		{
			name:   "dangling",
			target: func(t *testing.T, tmp string) string { return filepath.Join(tmp, "missing") },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tmp := t.TempDir()
			link := filepath.Join(tmp, "link")
			require.NoError(t, os.Symlink(tt.target(t, tmp), link))

			err := makeDirLevels(filepath.Join(link, "logs"), 0755)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrStructuralConflict))
			assert.False(t, errors.Is(err, ErrCreateFailed))
			assert.Contains(t, err.Error(), "is a symlink")
		})
	}
}

func TestDescribeMode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "regular file", describeMode(0644))
	assert.Equal(t, "symlink", describeMode(os.ModeSymlink|0777))
	assert.Equal(t, "named pipe", describeMode(os.ModeNamedPipe))
	assert.Equal(t, "socket", describeMode(os.ModeSocket))
	assert.Equal(t, "device", describeMode(os.ModeDevice))
}
