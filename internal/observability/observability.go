package observability

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	LogLevel       slog.Level
}

// Resources holds the initialized telemetry providers so the caller can
// shut them down in one place.
type Resources struct {
	logger         *slog.Logger
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

// Init configures structured logging and, when an OTLP endpoint is set,
// metric and trace export. Without OTEL_EXPORTER_OTLP_ENDPOINT the
// global otel providers stay as no-ops.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	res := &Resources{
		logger: logging.NewLogger(cfg.LogLevel),
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return res, nil
	}

	otelRes, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	))
	if err != nil {
		return nil, err
	}

	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, err
	}
	res.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(otelRes),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter,
			sdkmetric.WithInterval(15*time.Second),
		)),
	)
	otel.SetMeterProvider(res.meterProvider)

	traceExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	res.tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithResource(otelRes),
		sdktrace.WithBatcher(traceExporter),
	)
	otel.SetTracerProvider(res.tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return res, nil
}

// Shutdown flushes pending telemetry. Safe to call when export was
// never configured.
func (r *Resources) Shutdown(ctx context.Context) error {
	var errs []error
	if r.meterProvider != nil {
		if err := r.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if r.tracerProvider != nil {
		if err := r.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
