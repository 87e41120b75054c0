package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const reminderMeterName = "reminder.pass"

type ReminderMetrics struct {
	medicationsEvaluated metric.Int64Counter
	actionsEmitted       metric.Int64Counter
	remindersSent        metric.Int64Counter
	caregiverAlerts      metric.Int64Counter
	unitFailures         metric.Int64Counter
	passDuration         metric.Float64Histogram
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	medicationsEvaluated, err := meter.Int64Counter(
		"reminder_medications_total",
		metric.WithDescription("Total number of medications processed per outcome"),
		metric.WithUnit("{medication}"),
	)
	if err != nil {
		return nil, err
	}

	actionsEmitted, err := meter.Int64Counter(
		"reminder_actions_total",
		metric.WithDescription("Total number of actions decided by the engine"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return nil, err
	}

	remindersSent, err := meter.Int64Counter(
		"reminder_patient_pushes_total",
		metric.WithDescription("Total number of patient reminder pushes by result"),
		metric.WithUnit("{push}"),
	)
	if err != nil {
		return nil, err
	}

	caregiverAlerts, err := meter.Int64Counter(
		"reminder_caregiver_alerts_total",
		metric.WithDescription("Total number of caregiver alerts by kind and result"),
		metric.WithUnit("{alert}"),
	)
	if err != nil {
		return nil, err
	}

	unitFailures, err := meter.Int64Counter(
		"reminder_unit_failures_total",
		metric.WithDescription("Total number of per-medication failures that were isolated"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	passDuration, err := meter.Float64Histogram(
		"reminder_pass_duration_seconds",
		metric.WithDescription("Duration of one full reminder pass"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		medicationsEvaluated: medicationsEvaluated,
		actionsEmitted:       actionsEmitted,
		remindersSent:        remindersSent,
		caregiverAlerts:      caregiverAlerts,
		unitFailures:         unitFailures,
		passDuration:         passDuration,
	}, nil
}

func (m *ReminderMetrics) RecordMedicationProcessed(ctx context.Context, outcome string) {
	m.medicationsEvaluated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordActionEmitted(ctx context.Context, kind string) {
	m.actionsEmitted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *ReminderMetrics) RecordPatientPush(ctx context.Context, result string) {
	m.remindersSent.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
	))
}

func (m *ReminderMetrics) RecordCaregiverAlert(ctx context.Context, kind, result string) {
	m.caregiverAlerts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("result", result),
	))
}

func (m *ReminderMetrics) RecordUnitFailure(ctx context.Context, stage string) {
	m.unitFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
	))
}

func (m *ReminderMetrics) RecordPassDuration(ctx context.Context, duration time.Duration) {
	m.passDuration.Record(ctx, duration.Seconds())
}
