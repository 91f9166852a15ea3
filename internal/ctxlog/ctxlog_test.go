package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_AddsAttributes(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithLogger(context.Background(), logger)

	ctx, child := With(ctx, "variant", "debug")
	FromContext(ctx).Info("resolved")

	assert.NotSame(t, logger, child)
	assert.Contains(t, buf.String(), "variant=debug")
	assert.Contains(t, buf.String(), "msg=resolved")
}
