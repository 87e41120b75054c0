package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=pass_recorder.go -destination=pass_recorder_mock.go -package=domain

// PassOutcomeRecord is one per-medication outcome row from a pass.
type PassOutcomeRecord struct {
	RunID          string
	PatientID      string
	MedicationID   string
	MedicationName string

	// Outcome is one of "evaluated", "skipped", "failed".
	Outcome string
	Reason  string

	Resets           int
	PatientReminders int
	CaregiverAlerts  int
	Advancements     int

	EvaluatedAt time.Time
}

const (
	OutcomeEvaluated = "evaluated"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"
)

// PassRecorder persists per-medication pass outcomes for observability.
type PassRecorder interface {
	RecordOutcomes(ctx context.Context, records []PassOutcomeRecord) error
	Flush(ctx context.Context) error
	Close() error
}
