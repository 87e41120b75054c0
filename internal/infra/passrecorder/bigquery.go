//go:build gcloud

package passrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt       time.Time `bigquery:"recorded_at"`
	RunID            string    `bigquery:"run_id"`
	PatientID        string    `bigquery:"patient_id"`
	MedicationID     string    `bigquery:"medication_id"`
	MedicationName   string    `bigquery:"medication_name"`
	Outcome          string    `bigquery:"outcome"`
	Reason           string    `bigquery:"reason"`
	Resets           int64     `bigquery:"resets"`
	PatientReminders int64     `bigquery:"patient_reminders"`
	CaregiverAlerts  int64     `bigquery:"caregiver_alerts"`
	Advancements     int64     `bigquery:"advancements"`
	EvaluatedAt      time.Time `bigquery:"evaluated_at"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PassRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "pass result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, pass result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, pass result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "pass result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordOutcomes(ctx context.Context, records []domain.PassOutcomeRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	bqRecords := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		bqRecords = append(bqRecords, &bigQueryRecord{
			RecordedAt:       now,
			RunID:            record.RunID,
			PatientID:        record.PatientID,
			MedicationID:     record.MedicationID,
			MedicationName:   record.MedicationName,
			Outcome:          record.Outcome,
			Reason:           record.Reason,
			Resets:           int64(record.Resets),
			PatientReminders: int64(record.PatientReminders),
			CaregiverAlerts:  int64(record.CaregiverAlerts),
			Advancements:     int64(record.Advancements),
			EvaluatedAt:      record.EvaluatedAt,
		})
	}

	if err := r.inserter.Put(ctx, bqRecords); err != nil {
		slog.WarnContext(ctx, "failed to insert pass results to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
