package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/pkg/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewTracerProvider,
	),
)

// NewTracerProvider exports spans over OTLP/HTTP when OTEL_ENDPOINT is set and is a no-op otherwise.
func NewTracerProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (trace.TracerProvider, error) {
	if cfg.Tracing.Endpoint == "" {
		return noop.NewTracerProvider(), nil
	}

	ctx := context.Background()
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Tracing.Endpoint))
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.Tracing.ServiceName)),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("failed to flush traces", "error", err)
				return err
			}
			return nil
		},
	})

	logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint, "service", cfg.Tracing.ServiceName)
	return tp, nil
}
