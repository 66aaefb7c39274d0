// pkg/logger/writer.go

package logger

import (
	"os"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logpath"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// GetLogFileWriter opens path for appending. The directory must exist.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, xdg.FilePermOwnerReadWrite)
	if err != nil {
		return nil, cerr.Wrap(err, "failed to open log file")
	}
	return zapcore.AddSync(file), nil
}

// FindWritableLogPath resolves logdir's own log file location. A nil
// resolver uses the process environment.
func FindWritableLogPath(r *logpath.Resolver) (string, error) {
	if r == nil {
		r = &logpath.Resolver{}
	}
	path, ok, err := r.ResolveLogPath(SelfAppName, "")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", logdir_err.NewNotFoundError("no writable log path found")
	}
	return path, nil
}
