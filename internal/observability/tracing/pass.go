package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const passTracerName = "github.com/KasumiMercury/primind-medication-reminder/internal/service/pass"

func PassTracer() trace.Tracer {
	return otel.Tracer(passTracerName)
}

func StartPassSpan(ctx context.Context, runID string) (context.Context, trace.Span) {
	return PassTracer().Start(ctx, "reminder.pass",
		trace.WithAttributes(
			attribute.String("run_id", runID),
		),
	)
}

func StartPatientSpan(ctx context.Context, patientID string) (context.Context, trace.Span) {
	return PassTracer().Start(ctx, "reminder.patient",
		trace.WithAttributes(
			attribute.String("patient_id", patientID),
		),
	)
}

func RecordPassResult(span trace.Span, patients, medications, failed int, err error) {
	span.SetAttributes(
		attribute.Int("pass.patient_count", patients),
		attribute.Int("pass.medication_count", medications),
		attribute.Int("pass.failed_count", failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
