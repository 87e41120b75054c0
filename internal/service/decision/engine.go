package decision

import (
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// Engine decides which reminder effects are due for one medication at one
// instant. Evaluate is pure: it reads the record state and the clock value
// it is handed, mutates nothing, and returns the same actions for the same
// inputs.
type Engine struct {
	windows Windows
}

func NewEngine(windows Windows) *Engine {
	return &Engine{windows: windows}
}

// Evaluate applies the per-slot rule chain. The first matching rule wins
// for a slot; slots are independent of each other. today must be now's
// calendar date in now's location, formatted with domain.DateLayout.
//
// Per slot, in order:
//  1. day rollover: the stored taken value is stale (lastTakenDate differs
//     from today), still true, and the slot's instant has passed; emit a
//     reset so the persisted flag catches up. The stored-value guard keeps
//     this from re-firing once the reset has been applied.
//  2. on-time reminder: not taken today and now is within the tolerance
//     window around the slot instant. In the precomputed variant the next
//     notification time advances together with the reminder.
//  3. caregiver confirmation: taken today.
//  4. caregiver delay alert: not taken today, nothing recorded today at
//     all, and the delay threshold has elapsed.
func (e *Engine) Evaluate(now time.Time, today string, sched domain.Schedule, st domain.IntakeState) []domain.Action {
	if !st.Enabled {
		return nil
	}

	dayChanged := st.LastTakenDate != today

	var actions []domain.Action
	for _, slot := range sched.Slots() {
		scheduledAt := slot.At(now)
		id := slot.SlotID()
		takenToday := st.TakenOn(today, id)

		switch {
		case dayChanged && st.StoredTaken(id) && !scheduledAt.After(now):
			actions = append(actions, domain.NewResetTaken(id, scheduledAt, st.LastTakenDate))

		case !takenToday && withinTolerance(now, scheduledAt, e.windows.Tolerance):
			actions = append(actions, domain.NewPatientReminder(id, scheduledAt))
			if st.NextNotificationTime != nil {
				actions = append(actions, domain.NewAdvanceNextNotification(id, scheduledAt, sched.NextAfter(now)))
			}

		case takenToday:
			actions = append(actions, domain.NewCaregiverAlert(domain.AlertConfirmation, id, scheduledAt))

		case dayChanged && now.Sub(scheduledAt) >= e.windows.Delay:
			actions = append(actions, domain.NewCaregiverAlert(domain.AlertDelay, id, scheduledAt))
		}
	}

	return actions
}

func withinTolerance(now, scheduledAt time.Time, tolerance time.Duration) bool {
	diff := now.Sub(scheduledAt)
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
