// pkg/logdir_io/context.go

package logdir_io

import (
	"context"
	"runtime"
	"time"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RuntimeContext carries the span, scoped logger and timing of one command.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Span       trace.Span
	Timestamp  time.Time
	Command    string
	TraceID    string
	Attributes map[string]string
}

// NewContext starts a span for cmdName and scopes the process logger to it.
func NewContext(parent context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(parent, cmdName,
		attribute.String("os", runtime.GOOS),
	)

	traceID := telemetry.TraceID(span)
	if traceID == "" {
		traceID = logger.GenerateTraceID()
	}

	return &RuntimeContext{
		Ctx:  ctx,
		Span: span,
		Log: logger.L().With(
			zap.String("command", cmdName),
			zap.String("trace_id", traceID),
		).Named(cmdName),
		Timestamp:  time.Now(),
		Command:    cmdName,
		TraceID:    traceID,
		Attributes: make(map[string]string),
	}
}

// CtxLog returns the logger bound to the command's span, so entries are
// also recorded as span events.
func (rc *RuntimeContext) CtxLog() otelzap.LoggerWithCtx {
	return otelzap.New(rc.Log).Ctx(rc.Ctx)
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = logdir_err.NewInternalError("panic recovered", cerr.AssertionFailedf("panic: %v", r))
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs the outcome, records it on the span and ends the span.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	var err error
	if errPtr != nil {
		err = *errPtr
	}
	duration := time.Since(rc.Timestamp)

	attrs := []attribute.KeyValue{
		attribute.Bool("success", err == nil),
		attribute.Int64("duration_ms", duration.Milliseconds()),
	}
	for k, v := range rc.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	rc.Span.SetAttributes(attrs...)

	if err != nil {
		rc.Span.RecordError(err)
		rc.Span.SetStatus(codes.Error, logdir_err.CategoryOf(err).String())
		rc.Log.Debug("Command failed", zap.Duration("duration", duration), zap.Error(err))
		return
	}
	rc.Log.Debug("Command completed", zap.Duration("duration", duration))
}
