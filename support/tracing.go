package support

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-counter-go/we"
)

// Tracing installs a global tracer provider for the configured exporter. The
// returned cleanup flushes pending spans.
func Tracing(ctx context.Context, cfg Config, console io.Writer) (*sdktrace.TracerProvider, func(), error) {
	var exporter sdktrace.SpanExporter
	var err error

	switch cfg.TraceExporter {
	case "console":
		exporter, err = we.ConsoleExporter(console)
	case "otlp":
		exporter, err = we.OTLPExporter(ctx, cfg.OTLPEndpoint, cfg.OTLPInsecure, nil)
	case "jaeger":
		exporter, err = we.JaegerExporter(cfg.JaegerURL)
	}

	if err != nil {
		return nil, nil, err
	}

	var options []sdktrace.TracerProviderOption
	if exporter != nil {
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	provider := sdktrace.NewTracerProvider(options...)
	otel.SetTracerProvider(provider)

	return provider, func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Err(err).Msg("tracer provider failed to shut down cleanly")
		}
	}, nil
}
