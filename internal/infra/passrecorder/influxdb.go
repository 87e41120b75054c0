//go:build !gcloud

package passrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PassRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "pass result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, pass result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "pass result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordOutcomes(ctx context.Context, records []domain.PassOutcomeRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		runID := record.RunID
		if runID == "" {
			runID = "default"
		}

		// Use real time as timestamp to prevent overwrites between passes
		pointTime := time.Now()

		point := influxdb2.NewPoint(
			"reminder_pass_result",
			map[string]string{
				"run_id":  runID,
				"outcome": record.Outcome,
			},
			map[string]any{
				"patient_id":        record.PatientID,
				"medication_id":     record.MedicationID,
				"medication_name":   record.MedicationName,
				"reason":            record.Reason,
				"resets":            record.Resets,
				"patient_reminders": record.PatientReminders,
				"caregiver_alerts":  record.CaregiverAlerts,
				"advancements":      record.Advancements,
				"evaluated_unix":    record.EvaluatedAt.Unix(),
			},
			pointTime,
		)

		if err := r.writeAPI.WritePoint(ctx, point); err != nil {
			slog.WarnContext(ctx, "failed to write pass result to InfluxDB",
				slog.String("error", err.Error()),
				slog.String("patient_id", record.PatientID),
				slog.String("medication_id", record.MedicationID),
			)
		}
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
