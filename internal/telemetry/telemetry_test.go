package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/vovakirdan/jailrun/internal/core"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JAILRUN_TELEMETRY", "")
	t.Setenv("JAILRUN_OTLP_ENDPOINT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Enabled {
		t.Error("telemetry should be disabled by default")
	}
	if cfg.ServiceName != "jailrun" {
		t.Errorf("ServiceName = %q, want jailrun", cfg.ServiceName)
	}
	if cfg.SampleRatio != 1 {
		t.Errorf("SampleRatio = %v, want 1", cfg.SampleRatio)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JAILRUN_TELEMETRY", "true")
	t.Setenv("JAILRUN_OTLP_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("JAILRUN_SERVICE_NAME", "jailrun-ssh")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.Enabled || cfg.Endpoint != "http://192.0.2.1:4318" || cfg.ServiceName != "jailrun-ssh" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadBool(t *testing.T) {
	t.Setenv("JAILRUN_TELEMETRY", "maybe")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for invalid JAILRUN_TELEMETRY")
	}
}

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupEnabledShutsDownCleanly(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	// Non-routable address so nothing is exported.
	cfg := Config{Enabled: true, Endpoint: "http://192.0.2.1:4318", ServiceName: "test", SampleRatio: 1}
	shutdown, err := Setup(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestRoundSpan(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))

	_, span := StartRound(context.Background(), "jailbreak", 42)
	EndRound(span, core.GameState{Score: 70, GameOver: true, Outcome: "won", Elapsed: 12})

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 ended span, got %d", len(ended))
	}
	s := ended[0]
	if s.Name() != RoundSpan {
		t.Errorf("span name = %q, want %q", s.Name(), RoundSpan)
	}

	want := map[attribute.Key]attribute.Value{
		"game.id":       attribute.StringValue("jailbreak"),
		"round.seed":    attribute.Int64Value(42),
		"round.outcome": attribute.StringValue("won"),
		"round.score":   attribute.IntValue(70),
		"round.ticks":   attribute.IntValue(12),
	}
	got := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		got[kv.Key] = kv.Value
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("attribute %s = %v, want %v", k, got[k].Emit(), v.Emit())
		}
	}
}

func TestEndRoundAbandoned(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))

	_, span := StartRound(context.Background(), "clicker", 1)
	EndRound(span, core.GameState{Score: 3})

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 ended span, got %d", len(ended))
	}
	for _, kv := range ended[0].Attributes() {
		if kv.Key == "round.outcome" && kv.Value.AsString() != "abandoned" {
			t.Errorf("outcome = %q, want abandoned", kv.Value.AsString())
		}
	}
}
