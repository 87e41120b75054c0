package domain

import "context"

//go:generate mockgen -source=caregiver_directory.go -destination=caregiver_directory_mock.go -package=domain

// CaregiverDirectory resolves patient-to-caregiver links and writes the
// caregiver-side notification records.
type CaregiverDirectory interface {
	LinksForPatient(ctx context.Context, patientID string) ([]CaregiverLink, error)
	GetCaregiver(ctx context.Context, caregiverID string) (*Caregiver, error)
	AppendNotification(ctx context.Context, caregiverID string, n *CaregiverNotification) error
	IncrementUnread(ctx context.Context, caregiverID string) error
}
