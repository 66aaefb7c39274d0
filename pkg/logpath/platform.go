// pkg/logpath/platform.go

package logpath

// Platform identifies an operating system family with a log path profile.
type Platform int

const (
	Unknown Platform = iota
	Linux
	MacOS
	Windows
)

var platformNames = map[Platform]string{
	Unknown: "unknown",
	Linux:   "linux",
	MacOS:   "macos",
	Windows: "windows",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return platformNames[Unknown]
}

// PlatformFor maps a runtime.GOOS value to its platform family.
func PlatformFor(goos string) Platform {
	switch goos {
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	default:
		return Unknown
	}
}

// Platforms lists the families that have a profile, in display order.
func Platforms() []Platform {
	return []Platform{Linux, MacOS, Windows}
}
