package config

import "errors"

var (
	ErrInvalidTolerance      = errors.New("TOLERANCE_MINUTES must be a positive integer")
	ErrInvalidDelayThreshold = errors.New("DELAY_THRESHOLD_MINUTES must be a positive integer")
	ErrDelayBelowTolerance   = errors.New("DELAY_THRESHOLD_MINUTES must not be smaller than TOLERANCE_MINUTES")
	ErrCredentialsMissing    = errors.New("SERVICE_ACCOUNT_KEY or GCLOUD_PROJECT_ID is required")
)
