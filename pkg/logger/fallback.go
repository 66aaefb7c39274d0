// pkg/logger/fallback.go

package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logpath"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SelfAppName names logdir's own log directory.
const SelfAppName = "logdir"

// Options controls InitializeWithFallback.
type Options struct {
	Level string
	// ToFile adds a JSON sink at the location logpath resolves for SelfAppName.
	ToFile   bool
	Resolver *logpath.Resolver
	// Console defaults to stderr so command output on stdout stays clean.
	Console io.Writer
}

func NewFallbackLogger(level zapcore.Level, console io.Writer) *zap.Logger {
	if console == nil {
		console = os.Stderr
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(console)),
		level,
	)
	return zap.New(core, loggerOptions(level)...)
}

// loggerOptions adds stack traces only when debugging.
func loggerOptions(level zapcore.Level) []zap.Option {
	opts := []zap.Option{zap.AddCaller()}
	if level <= zapcore.DebugLevel {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}
	return opts
}

// InitializeWithFallback installs the process logger and returns the log
// file path in use, or "" when logging to the console only.
func InitializeWithFallback(opts Options) string {
	level := ParseLogLevel(opts.Level)
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	if !opts.ToFile {
		SetLogger(NewFallbackLogger(level, console))
		return ""
	}

	path, err := FindWritableLogPath(opts.Resolver)
	if err != nil {
		fmt.Fprintln(console, "No writable log path found. Logging to console only:", err)
		SetLogger(NewFallbackLogger(level, console))
		return ""
	}

	writer, err := GetLogFileWriter(path)
	if err != nil {
		fmt.Fprintln(console, "Could not write to log file, logging to console only:", err)
		SetLogger(NewFallbackLogger(level, console))
		return ""
	}

	jsonCfg := zap.NewProductionEncoderConfig()
	jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	jsonCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()), zapcore.Lock(zapcore.AddSync(console)), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, level),
	)

	l := zap.New(core, loggerOptions(level)...)
	SetLogger(l)
	l.Debug("Logger initialized",
		zap.String("log_level", level.String()),
		zap.String("log_path", path),
	)
	return path
}

func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}
