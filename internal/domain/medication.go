package domain

import (
	"fmt"
	"slices"
	"time"
)

// DateLayout is the calendar-date format stored in lastTakenDate and used
// as the takenTimes map key.
const DateLayout = "2006-01-02"

// SlotID identifies one scheduled time-of-day within a medication, formatted
// as zero-padded "HH:MM".
type SlotID string

// TimeOfDay is one scheduled intake time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

func (t TimeOfDay) SlotID() SlotID {
	return SlotID(fmt.Sprintf("%02d:%02d", t.Hour, t.Minute))
}

// At returns the scheduled instant for this slot on the calendar day of ref,
// in ref's location.
func (t TimeOfDay) At(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, 0, 0, ref.Location())
}

func (t TimeOfDay) String() string {
	return string(t.SlotID())
}

// Schedule is the uniform view over the stored schedule shapes: an ordered,
// non-empty sequence of daily intake times.
type Schedule struct {
	slots []TimeOfDay
}

func NewSchedule(slots []TimeOfDay) (Schedule, error) {
	if len(slots) == 0 {
		return Schedule{}, ErrEmptySchedule
	}

	normalized := make([]TimeOfDay, 0, len(slots))
	for _, s := range slots {
		if !s.Valid() {
			return Schedule{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidSlot, s.Hour, s.Minute)
		}
		if slices.Contains(normalized, s) {
			continue
		}
		normalized = append(normalized, s)
	}

	slices.SortFunc(normalized, func(a, b TimeOfDay) int {
		if a.Hour != b.Hour {
			return a.Hour - b.Hour
		}
		return a.Minute - b.Minute
	})

	return Schedule{slots: normalized}, nil
}

func (s Schedule) Slots() []TimeOfDay {
	return s.slots
}

// NextAfter returns the earliest scheduled instant strictly after now.
// When every slot today is already past, it rolls to the first slot tomorrow.
func (s Schedule) NextAfter(now time.Time) time.Time {
	for _, slot := range s.slots {
		if at := slot.At(now); at.After(now) {
			return at
		}
	}
	return s.slots[0].At(now.AddDate(0, 0, 1))
}

// IntakeState is the per-medication taken state as read from the record.
// The legacy shape stores one Taken flag for the whole medication; the
// multi-slot shape stores taken slot IDs keyed by calendar date.
type IntakeState struct {
	Enabled              bool
	Taken                bool
	TakenSlots           map[string][]SlotID
	LastTakenDate        string
	NextNotificationTime *time.Time
}

func (st IntakeState) MultiSlot() bool {
	return st.TakenSlots != nil
}

// TakenOn reports whether the slot counts as taken on the given date.
// Stale flags are ignored: when LastTakenDate differs from date the stored
// value carries over from a previous day and is treated as not taken.
func (st IntakeState) TakenOn(date string, slot SlotID) bool {
	if st.LastTakenDate != date {
		return false
	}
	if st.MultiSlot() {
		return slices.Contains(st.TakenSlots[date], slot)
	}
	return st.Taken
}

// StoredTaken reports the persisted taken value for the slot regardless of
// which day it belongs to. This is the guard for day-rollover resets: a
// reset is warranted only while the stale value is still true.
func (st IntakeState) StoredTaken(slot SlotID) bool {
	if st.MultiSlot() {
		return slices.Contains(st.TakenSlots[st.LastTakenDate], slot)
	}
	return st.Taken
}

// MedicationRecord is one medication document as stored, before schedule
// normalization. Exactly one of the legacy pair or ScheduledTimes is
// expected to be present.
type MedicationRecord struct {
	ID        string
	PatientID string
	Name      string
	Dosage    string

	LegacyHour     *int
	LegacyMinute   *int
	ScheduledTimes []TimeOfDay

	State IntakeState
}
