// Package telemetry provides optional OpenTelemetry tracing of game rounds.
// Tracing is off unless JAILRUN_TELEMETRY is set; without a registered
// provider the global tracer is a no-op, so callers never branch on it.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/jailrun/internal/core"
)

const (
	instrumentation = "github.com/vovakirdan/jailrun"

	// RoundSpan is the name of the span covering one game round.
	RoundSpan = "jailrun.round"
)

// Config holds the telemetry settings read from the environment.
type Config struct {
	Enabled bool `env:"JAILRUN_TELEMETRY" envDefault:"false"`
	// Endpoint is a full OTLP/HTTP URL. When empty the exporter falls back
	// to the standard OTEL_EXPORTER_OTLP_* variables.
	Endpoint    string  `env:"JAILRUN_OTLP_ENDPOINT"`
	ServiceName string  `env:"JAILRUN_SERVICE_NAME" envDefault:"jailrun"`
	SampleRatio float64 `env:"JAILRUN_TRACE_SAMPLE_RATIO" envDefault:"1"`
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("telemetry: parse env: %w", err)
	}
	return cfg, nil
}

// Setup registers a global tracer provider exporting over OTLP/HTTP.
// When tracing is disabled it registers nothing and returns a no-op shutdown.
// The returned shutdown flushes pending spans and should be deferred.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled {
		return noop, nil
	}

	var opts []otlptracehttp.Option
	if cfg.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return noop, fmt.Errorf("telemetry: create exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("telemetry: build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the tracer used for game rounds.
func Tracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(instrumentation)
}

// StartRound opens the span for one round of gameID played with seed.
func StartRound(ctx context.Context, gameID string, seed int64) (context.Context, trace.Span) {
	return Tracer().Start(ctx, RoundSpan,
		trace.WithAttributes(
			attribute.String("game.id", gameID),
			attribute.Int64("round.seed", seed),
		),
	)
}

// EndRound records how the round finished and ends its span. An empty
// outcome marks a round the player walked away from.
func EndRound(span trace.Span, st core.GameState) {
	outcome := st.Outcome
	if outcome == "" {
		outcome = "abandoned"
	}
	span.SetAttributes(
		attribute.String("round.outcome", outcome),
		attribute.Int("round.score", st.Score),
		attribute.Int("round.ticks", st.Elapsed),
	)
	span.End()
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
