package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/sportsfeed/internal/platform/resilience"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsProbeRequestLog(t *testing.T) {
	if !isProbeRequestLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if isProbeRequestLog("http request", []any{"path", "/v1/leagues/nfl/scoreboard"}) {
		t.Fatalf("did not expect scoreboard request log to be skipped")
	}
	if isProbeRequestLog("espn request rejected", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-request log to be skipped")
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"league", "nfl", "status", 503, "skipped", uint8(4), 7, "x", "dangling"})
	if len(attrs) != 5 {
		t.Fatalf("expected 5 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "league" || attrs[0].Value.AsString() != "nfl" {
		t.Fatalf("unexpected league attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "status" || attrs[1].Value.AsInt64() != 503 {
		t.Fatalf("unexpected status attribute: %+v", attrs[1])
	}
	if attrs[2].Value.AsInt64() != 4 {
		t.Fatalf("unexpected skipped attribute: %+v", attrs[2])
	}
	if attrs[3].Key != "arg_3" {
		t.Fatalf("expected positional key for non-string key, got %q", attrs[3].Key)
	}
	if attrs[4].Key != "dangling" || attrs[4].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute: %+v", attrs[4])
	}
}

func TestLogValue(t *testing.T) {
	if v := logValue(errors.New("upstream 502"), 0); v.AsString() != "upstream 502" {
		t.Fatalf("unexpected error value: %v", v)
	}
	if v := logValue(1500*time.Millisecond, 0); v.AsString() != "1.5s" {
		t.Fatalf("unexpected duration value: %v", v)
	}
	if v := logValue(resilience.CircuitStateOpen, 0); v.AsString() != "open" {
		t.Fatalf("unexpected named string value: %v", v)
	}
	if v := logValue([]string{"dates", "groups"}, 0); v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 2 {
		t.Fatalf("unexpected slice value: %v", v)
	}

	m := logValue(map[string]any{"games": 11, "final": true}, 0)
	if m.Kind() != otellog.KindMap || len(m.AsMap()) != 2 {
		t.Fatalf("unexpected map value: %v", m)
	}
	if m.AsMap()[0].Key != "final" {
		t.Fatalf("expected sorted map keys, got %s first", m.AsMap()[0].Key)
	}
}

func TestSeverityOf(t *testing.T) {
	cases := map[zapcore.Level]otellog.Severity{
		zapcore.DebugLevel: otellog.SeverityDebug,
		zapcore.InfoLevel:  otellog.SeverityInfo,
		zapcore.WarnLevel:  otellog.SeverityWarn,
		zapcore.ErrorLevel: otellog.SeverityError,
		zapcore.FatalLevel: otellog.SeverityFatal,
	}
	for level, want := range cases {
		if got := severityOf(level); got != want {
			t.Fatalf("severityOf(%s) = %v, want %v", level, got, want)
		}
	}
}
