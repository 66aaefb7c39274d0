package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitDisabled(t *testing.T) {
	shutdown, err := Init("logdir-test", false, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, span := Start(context.Background(), "noop")
	span.End()
	assert.Empty(t, TraceID(span))
}

func TestInitEnabledWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := Init("logdir-test", true, &buf)
	require.NoError(t, err)

	ctx, span := Start(context.Background(), "resolve", attribute.String("platform", "linux"))
	assert.NotNil(t, ctx)
	assert.Len(t, TraceID(span), 32)
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name": "resolve"`)
	assert.Contains(t, buf.String(), "platform")

	// leave a noop provider behind for other tests
	_, err = Init("logdir-test", false, nil)
	require.NoError(t, err)
}

func TestStartNilContext(t *testing.T) {
	ctx, span := Start(nil, "nil-ctx")
	defer span.End()
	assert.NotNil(t, ctx)
}
