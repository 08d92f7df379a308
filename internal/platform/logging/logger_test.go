package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandler_WritesRecordWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromCore(core)

	logger.InfoContext(context.Background(), "feed reconciled",
		"posts_total", 2,
		"error", errors.New("boom"),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "feed reconciled" {
		t.Fatalf("unexpected message %q", entries[0].Message)
	}

	fields := entries[0].ContextMap()
	if fields["posts_total"] != int64(2) {
		t.Fatalf("unexpected posts_total field: %v", fields["posts_total"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestHandler_LevelGating(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := FromCore(core)

	logger.Info("dropped")
	logger.Warn("kept")

	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "kept" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromCore(core).With("service", "jogolindo-api").WithGroup("job")

	logger.Info("run finished", "name", "reconcile-feed")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["service"] != "jogolindo-api" {
		t.Fatalf("unexpected service field: %v", fields["service"])
	}
	if fields["job.name"] != "reconcile-feed" {
		t.Fatalf("unexpected grouped field: %v", fields["job.name"])
	}
}

func TestZapLevelMapping(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zapcore.Level
	}{
		{slog.LevelDebug, zapcore.DebugLevel},
		{slog.LevelInfo, zapcore.InfoLevel},
		{slog.LevelWarn, zapcore.WarnLevel},
		{slog.LevelError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		if got := zapLevel(tt.in); got != tt.want {
			t.Fatalf("zapLevel(%v)=%v want=%v", tt.in, got, tt.want)
		}
	}
}
