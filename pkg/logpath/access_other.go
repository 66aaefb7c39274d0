//go:build !unix

// pkg/logpath/access_other.go

package logpath

import "os"

// isWritable reports whether the process may create entries in dir. Without
// access(2) the only reliable check is to create a file there.
func isWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".logdir-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
