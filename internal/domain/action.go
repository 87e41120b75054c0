package domain

import "time"

// ActionKind tags a decision emitted by the reminder engine.
type ActionKind string

const (
	ActionResetTaken              ActionKind = "reset_taken"
	ActionSendPatientReminder     ActionKind = "send_patient_reminder"
	ActionSendCaregiverAlert      ActionKind = "send_caregiver_alert"
	ActionAdvanceNextNotification ActionKind = "advance_next_notification"
)

func (k ActionKind) String() string {
	return string(k)
}

// AlertKind distinguishes the two caregiver alert flavors.
type AlertKind string

const (
	AlertConfirmation AlertKind = "confirmation"
	AlertDelay        AlertKind = "delay"
)

func (k AlertKind) String() string {
	return string(k)
}

// Action is one decided effect for a single slot of a single medication.
type Action struct {
	Kind        ActionKind
	Slot        SlotID
	ScheduledAt time.Time

	// Alert is set only for ActionSendCaregiverAlert.
	Alert AlertKind

	// StaleDate is set only for ActionResetTaken: the lastTakenDate the
	// stale flag was recorded under.
	StaleDate string

	// NextTime is set only for ActionAdvanceNextNotification.
	NextTime time.Time
}

func NewResetTaken(slot SlotID, scheduledAt time.Time, staleDate string) Action {
	return Action{
		Kind:        ActionResetTaken,
		Slot:        slot,
		ScheduledAt: scheduledAt,
		StaleDate:   staleDate,
	}
}

func NewPatientReminder(slot SlotID, scheduledAt time.Time) Action {
	return Action{
		Kind:        ActionSendPatientReminder,
		Slot:        slot,
		ScheduledAt: scheduledAt,
	}
}

func NewCaregiverAlert(alert AlertKind, slot SlotID, scheduledAt time.Time) Action {
	return Action{
		Kind:        ActionSendCaregiverAlert,
		Slot:        slot,
		ScheduledAt: scheduledAt,
		Alert:       alert,
	}
}

func NewAdvanceNextNotification(slot SlotID, scheduledAt, next time.Time) Action {
	return Action{
		Kind:        ActionAdvanceNextNotification,
		Slot:        slot,
		ScheduledAt: scheduledAt,
		NextTime:    next,
	}
}
