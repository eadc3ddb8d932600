package periodica

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestExpvarMetricsRecorder(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	if rec.Name() == "" {
		t.Fatal("generated name should not be empty")
	}
	ctx := context.Background()
	rec.Observe(ctx, "table", true, 20*time.Millisecond)
	rec.Observe(ctx, "table", true, 30*time.Millisecond)
	rec.Observe(ctx, "table", false, 5*time.Millisecond)
	rec.Observe(ctx, "", true, time.Millisecond)

	snap := rec.Snapshot()
	if snap.Results["table"]["success"] != 2 || snap.Results["table"]["error"] != 1 {
		t.Fatalf("results: %+v", snap.Results)
	}
	if snap.DurationsMS["table"] != 55 {
		t.Fatalf("durations: %+v", snap.DurationsMS)
	}
	if len(snap.Results) != 1 {
		t.Fatalf("empty operation should be dropped: %+v", snap.Results)
	}
}

func TestPrometheusMetricsRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheusMetricsRecorder(reg)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}
	ctx := context.Background()
	rec.Observe(ctx, "neutral_data", true, 40*time.Millisecond)
	rec.Observe(ctx, "neutral_data", false, 10*time.Millisecond)

	if got := testutil.ToFloat64(rec.operations.WithLabelValues("neutral_data", "true")); got != 1 {
		t.Fatalf("success counter: %v", got)
	}
	if got := testutil.ToFloat64(rec.operations.WithLabelValues("neutral_data", "false")); got != 1 {
		t.Fatalf("error counter: %v", got)
	}

	// Registering the same collectors twice must fail.
	if _, err := NewPrometheusMetricsRecorder(reg); err == nil {
		t.Fatal("duplicate registration should fail")
	}
}

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("debug message", "k", 1)
	logger.Info("info message", "k", 2)
	logger.Warn("warn message", "k", 3)
	logger.Error("error message", "k", 4)

	if logs.Len() != 4 {
		t.Fatalf("entries: %d", logs.Len())
	}
	entry := logs.All()[2]
	if entry.Message != "warn message" || entry.Level != zap.WarnLevel {
		t.Fatalf("warn entry: %+v", entry)
	}
	if entry.ContextMap()["k"] != int64(3) {
		t.Fatalf("fields: %v", entry.ContextMap())
	}

	if _, ok := NewZapLogger(nil).(noopLogger); !ok {
		t.Fatal("nil logger should fall back to noop")
	}
}
