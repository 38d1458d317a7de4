package logging

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WithCarriesFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromCore(core).With("component", "espn")

	logger.Warn("espn request rejected", "status", 503, "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "espn" || fields["status"] != int64(503) || fields["error"] != "boom" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	logger := FromCore(core)

	logger.Debug("dropped")
	logger.InfoContext(context.Background(), "dropped too")
	logger.Error("kept")

	if logs.Len() != 1 || logs.All()[0].Message != "kept" {
		t.Fatalf("unexpected entries: %v", logs.All())
	}
}

func TestLogger_OddArgsAndNilLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	FromZap(zap.New(core)).Info("dangling", "league")

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["league"]; !ok {
		t.Fatalf("expected dangling key to be kept, got %v", fields)
	}

	var nilLogger *Logger
	nilLogger.Info("no panic")
	if nilLogger.Sync() != nil {
		t.Fatalf("expected nil logger sync to be a no-op")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

// Not parallel: the mirror is process-wide.
func TestSetMirror(t *testing.T) {
	var mu sync.Mutex
	var got []string
	var gotArgs []any
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, level.String()+":"+msg)
		gotArgs = args
	})
	defer SetMirror(nil)

	core, _ := observer.New(zapcore.InfoLevel)
	logger := FromCore(core).With("service", "sportsfeed-api")

	logger.Debug("below level")
	logger.InfoContext(context.Background(), "scoreboard resolved", "games", 2)

	SetMirror(nil)
	logger.Info("after removal")

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != "info:scoreboard resolved" {
		t.Fatalf("unexpected mirrored records: %v", got)
	}
	if len(gotArgs) != 4 || gotArgs[0] != "service" || gotArgs[2] != "games" {
		t.Fatalf("unexpected mirrored args: %v", gotArgs)
	}
}
