// pkg/logger/logger.go

package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// L returns the process logger. It is a no-op logger until one is installed.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger installs l as the process logger and as zap's global logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	log = l
	mu.Unlock()
	zap.ReplaceGlobals(l)
}

// Sync flushes any buffered log entries. Should be called before the application exits.
func Sync() error {
	err := L().Sync()
	if err != nil && isIgnorableSyncError(err) {
		return nil
	}
	return err
}

// Syncing a terminal fails with EINVAL/ENOTTY on most platforms.
func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") ||
		strings.Contains(msg, "inappropriate ioctl for device") ||
		strings.Contains(msg, "bad file descriptor")
}

// ParseLogLevel maps LOG_LEVEL-style names to zap levels, defaulting to info.
func ParseLogLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	case "DPANIC":
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}
