// pkg/xdg/types.go

package xdg

const (
	// Permission modes (in octal)
	DirPermStandard        = 0755
	FilePermOwnerReadWrite = 0600
)
