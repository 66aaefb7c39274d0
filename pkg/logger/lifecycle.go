// pkg/logger/lifecycle.go

package logger

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateTraceID returns a short 8-char trace ID.
func GenerateTraceID() string {
	return uuid.New().String()[:8]
}

// LogCommandLifecycle returns a deferred function for consistent start/stop
// logging. Failures are logged at debug level; the caller reports them.
func LogCommandLifecycle(cmdName, traceID string) func(err *error) {
	start := time.Now()
	L().Debug("Command started",
		zap.String("command", cmdName),
		zap.String("trace_id", traceID),
		zap.Time("start_time", start))

	return func(err *error) {
		duration := time.Since(start)
		if err != nil && *err != nil {
			L().Debug("Command failed",
				zap.String("command", cmdName),
				zap.String("trace_id", traceID),
				zap.Duration("duration", duration),
				zap.Error(*err))
			return
		}
		L().Debug("Command completed",
			zap.String("command", cmdName),
			zap.String("trace_id", traceID),
			zap.Duration("duration", duration))
	}
}
