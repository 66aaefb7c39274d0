//go:build unix

// pkg/logpath/access_unix.go

package logpath

import "golang.org/x/sys/unix"

// isWritable reports whether the process may create entries in dir.
func isWritable(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}
