package config

import (
	"fmt"
	"os"
	"time"
)

func ValidateForRun(cfg *Config) error {
	if cfg.Firestore.CredentialsJSON == "" && cfg.Firestore.ProjectID == "" &&
		os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		return ErrCredentialsMissing
	}

	if cfg.Reminder.DelayThresholdMinutes < cfg.Reminder.ToleranceMinutes {
		return ErrDelayBelowTolerance
	}

	if _, err := time.LoadLocation(cfg.Reminder.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Reminder.Timezone, err)
	}

	return nil
}
