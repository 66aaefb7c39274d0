// pkg/logpath/mkdir.go

package logpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	cerr "github.com/cockroachdb/errors"
)

// makeDirLevels creates dir one level at a time from its root downward.
// An existing directory at any level is accepted.
func makeDirLevels(dir string, perm os.FileMode) error {
	for _, level := range dirLevels(dir) {
		if err := makeDirLevel(level, perm); err != nil {
			return err
		}
	}
	return nil
}

// dirLevels returns every ancestor of dir below the root, then dir itself.
func dirLevels(dir string) []string {
	dir = filepath.Clean(dir)
	sep := string(filepath.Separator)

	vol := filepath.VolumeName(dir)
	rest := dir[len(vol):]
	current := vol
	if strings.HasPrefix(rest, sep) {
		current += sep
		rest = strings.TrimLeft(rest, sep)
	}

	var levels []string
	for _, part := range strings.Split(rest, sep) {
		if part == "" || part == "." {
			continue
		}
		if current == "" {
			current = part
		} else {
			current = filepath.Join(current, part)
		}
		levels = append(levels, current)
	}
	return levels
}

func makeDirLevel(path string, perm os.FileMode) error {
	mkErr := os.Mkdir(path, perm)
	if mkErr == nil {
		return nil
	}

	info, statErr := os.Stat(path)
	if statErr == nil && info.IsDir() {
		return nil
	}

	// Lstat describes what actually occupies the path; a dangling symlink
	// exists even though Stat fails.
	linfo, lstatErr := os.Lstat(path)
	if lstatErr != nil {
		err := fmt.Errorf("%w: %s: %w", ErrCreateFailed, path, mkErr)
		return logdir_err.WrapFilesystemError(err, path)
	}
	err := cerr.Wrapf(ErrStructuralConflict, "%s is a %s", path, describeMode(linfo.Mode()))
	return logdir_err.WrapFilesystemError(err, path)
}

func describeMode(mode os.FileMode) string {
	switch {
	case mode.IsRegular():
		return "regular file"
	case mode&os.ModeSymlink != 0:
		return "symlink"
	case mode&os.ModeNamedPipe != 0:
		return "named pipe"
	case mode&os.ModeSocket != 0:
		return "socket"
	case mode&os.ModeDevice != 0:
		return "device"
	default:
		return "non-directory"
	}
}
