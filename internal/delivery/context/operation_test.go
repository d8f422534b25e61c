package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartOperation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := StartOperation(context.Background(), logger, "sign_in")
	id := GetOperationID(ctx)

	assert.NotEmpty(t, id)
	assert.NotNil(t, GetLogger(ctx))

	// nested actions keep the outer operation
	nested := StartOperation(ctx, logger, "sync")
	assert.Equal(t, id, GetOperationID(nested))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("k", "v"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Equal(t, "", GetOperationID(context.Background()))
}
