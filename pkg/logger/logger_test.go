package logger

import (
	"context"
	"testing"
	"time"
)

func TestInitAndHelpers(t *testing.T) {
	Init("development")

	if GetLogger() == nil {
		t.Fatal("expected logger to be initialized")
	}

	// Second Init is a no-op.
	Init("production")

	ctx := context.WithValue(context.Background(), "request_id", "req-123")
	Info(ctx, "info message")
	Debug(ctx, "debug message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")
	LogRequest(ctx, "GET", "/health", 200, 5*time.Millisecond, "127.0.0.1")
}

func TestWithContext(t *testing.T) {
	Init("development")

	if WithContext(nil) == nil {
		t.Fatal("nil context should fall back to base logger")
	}

	ctx := context.WithValue(context.Background(), RequestIDKey, "typed-key")
	if WithContext(ctx) == nil {
		t.Fatal("typed key context should return a logger")
	}

	if WithContext(context.Background()) == nil {
		t.Fatal("empty context should fall back to base logger")
	}
}
