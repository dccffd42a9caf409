package ctxutil

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestIDFromCtx(ctx); got != "req-42" {
		t.Fatalf("RequestIDFromCtx = %q, want %q", got, "req-42")
	}
}

func TestRequestIDFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("RequestIDFromCtx = %q, want empty", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), requestIDKey, 42)
	if got := RequestIDFromCtx(ctx); got != "" {
		t.Fatalf("RequestIDFromCtx = %q, want empty for non-string value", got)
	}
}
