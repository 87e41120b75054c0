package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=patient_repository.go -destination=patient_repository_mock.go -package=domain

// PatientRepository reads patient and medication records and applies the
// state changes decided by the reminder engine.
type PatientRepository interface {
	ListPatients(ctx context.Context) ([]*Patient, error)
	ListMedications(ctx context.Context, patientID string) ([]*MedicationRecord, error)

	// ClearTaken clears the persisted taken value for the slot: the legacy
	// whole-medication flag, or the slot entry under staleDate for
	// multi-slot records.
	ClearTaken(ctx context.Context, patientID, medicationID string, slot SlotID, staleDate string) error

	SetNextNotificationTime(ctx context.Context, patientID, medicationID string, next time.Time) error
}
