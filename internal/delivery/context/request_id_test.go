package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", GetRequestIDFromContext(ctx))
}

func TestLogger_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Without a scoped logger the fallback comes back.
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With(slog.String("request_id", "req-123"))
	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestUserID_RoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserID(ctx)
	assert.False(t, ok)

	userID := uuid.New()
	ctx = WithUserID(ctx, userID)

	got, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}
