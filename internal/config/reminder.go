package config

import (
	"os"
	"strconv"
)

const (
	toleranceMinutesEnv      = "TOLERANCE_MINUTES"
	delayThresholdMinutesEnv = "DELAY_THRESHOLD_MINUTES"
	timezoneEnv              = "TIMEZONE"
	passWorkersEnv           = "PASS_WORKERS"
	unitTimeoutSecondsEnv    = "UNIT_TIMEOUT_SECONDS"

	defaultToleranceMinutes      = 2
	defaultDelayThresholdMinutes = 15
	defaultTimezone              = "America/Santiago"
	defaultPassWorkers           = 4
	defaultUnitTimeoutSeconds    = 5
)

type ReminderConfig struct {
	ToleranceMinutes      int
	DelayThresholdMinutes int
	Timezone              string
	PassWorkers           int
	UnitTimeoutSeconds    int
}

func LoadReminderConfig() (*ReminderConfig, error) {
	tolerance := defaultToleranceMinutes
	if v := os.Getenv(toleranceMinutesEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidTolerance
		}
		tolerance = parsed
	}

	delayThreshold := defaultDelayThresholdMinutes
	if v := os.Getenv(delayThresholdMinutesEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidDelayThreshold
		}
		delayThreshold = parsed
	}

	timezone := os.Getenv(timezoneEnv)
	if timezone == "" {
		timezone = defaultTimezone
	}

	workers := defaultPassWorkers
	if v := os.Getenv(passWorkersEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			workers = parsed
		}
	}

	unitTimeout := defaultUnitTimeoutSeconds
	if v := os.Getenv(unitTimeoutSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			unitTimeout = parsed
		}
	}

	return &ReminderConfig{
		ToleranceMinutes:      tolerance,
		DelayThresholdMinutes: delayThreshold,
		Timezone:              timezone,
		PassWorkers:           workers,
		UnitTimeoutSeconds:    unitTimeout,
	}, nil
}
