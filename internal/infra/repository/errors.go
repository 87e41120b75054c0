package repository

import "errors"

var (
	ErrInvalidMedicationData   = errors.New("invalid medication data")
	ErrInvalidNotificationData = errors.New("invalid notification data")
)
