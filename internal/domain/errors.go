package domain

import "errors"

var (
	ErrEmptySchedule      = errors.New("medication has no scheduled times")
	ErrInvalidSlot        = errors.New("scheduled time out of range")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrMedicationNotFound = errors.New("medication not found")
	ErrCaregiverNotFound  = errors.New("caregiver not found")
)
