package decision

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

const testDay = "2026-08-30"

func testWindows(t *testing.T) Windows {
	t.Helper()
	w, err := NewWindows(2, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func mustSchedule(t *testing.T, slots ...domain.TimeOfDay) domain.Schedule {
	t.Helper()
	sched, err := domain.NewSchedule(slots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sched
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 30, hour, minute, 0, 0, time.UTC)
}

func kinds(actions []domain.Action) []domain.ActionKind {
	out := make([]domain.ActionKind, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Kind)
	}
	return out
}

func TestEvaluateDisabledEmitsNothing(t *testing.T) {
	engine := NewEngine(testWindows(t))
	sched := mustSchedule(t, domain.TimeOfDay{Hour: 8, Minute: 0})

	nows := []time.Time{at(7, 58), at(8, 0), at(8, 30), at(23, 59)}
	states := []domain.IntakeState{
		{Enabled: false},
		{Enabled: false, Taken: true, LastTakenDate: testDay},
		{Enabled: false, Taken: true, LastTakenDate: "2026-08-29"},
	}

	for _, now := range nows {
		for _, st := range states {
			if got := engine.Evaluate(now, testDay, sched, st); len(got) != 0 {
				t.Errorf("now=%v state=%+v: got %v, want no actions", now, st, kinds(got))
			}
		}
	}
}

func TestEvaluateOnTimeWindowBoundary(t *testing.T) {
	engine := NewEngine(testWindows(t))
	sched := mustSchedule(t, domain.TimeOfDay{Hour: 8, Minute: 0})
	st := domain.IntakeState{Enabled: true}

	tests := []struct {
		now  time.Time
		want bool
	}{
		{at(7, 57), false},
		{at(7, 58), true},
		{at(8, 0), true},
		{at(8, 2), true},
		{at(8, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.now.Format("15:04"), func(t *testing.T) {
			actions := engine.Evaluate(tt.now, testDay, sched, st)
			fired := false
			for _, a := range actions {
				if a.Kind == domain.ActionSendPatientReminder {
					fired = true
				}
			}
			if fired != tt.want {
				t.Errorf("reminder fired=%v, want %v (actions: %v)", fired, tt.want, kinds(actions))
			}
		})
	}
}

func TestEvaluateDelayBoundary(t *testing.T) {
	engine := NewEngine(testWindows(t))
	sched := mustSchedule(t, domain.TimeOfDay{Hour: 8, Minute: 0})
	// Never taken: lastTakenDate differs from today.
	st := domain.IntakeState{Enabled: true, LastTakenDate: ""}

	tests := []struct {
		now  time.Time
		want bool
	}{
		{at(8, 14), false},
		{at(8, 15), true},
		{at(9, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.now.Format("15:04"), func(t *testing.T) {
			actions := engine.Evaluate(tt.now, testDay, sched, st)
			fired := false
			for _, a := range actions {
				if a.Kind == domain.ActionSendCaregiverAlert && a.Alert == domain.AlertDelay {
					fired = true
				}
			}
			if fired != tt.want {
				t.Errorf("delay alert fired=%v, want %v (actions: %v)", fired, tt.want, kinds(actions))
			}
		})
	}
}

func TestEvaluateOnTimeAndDelayMutuallyExclusive(t *testing.T) {
	engine := NewEngine(testWindows(t))
	sched := mustSchedule(t, domain.TimeOfDay{Hour: 8, Minute: 0})
	st := domain.IntakeState{Enabled: true}

	// Sweep the whole day minute by minute; no single evaluation may emit
	// both a patient reminder and a delay alert for the same slot.
	for minute := 0; minute < 24*60; minute++ {
		now := at(0, 0).Add(time.Duration(minute) * time.Minute)
		actions := engine.Evaluate(now, testDay, sched, st)

		var reminder, delay bool
		for _, a := range actions {
			switch {
			case a.Kind == domain.ActionSendPatientReminder:
				reminder = true
			case a.Kind == domain.ActionSendCaregiverAlert && a.Alert == domain.AlertDelay:
				delay = true
			}
		}
		if reminder && delay {
			t.Fatalf("now=%v: reminder and delay alert emitted together", now)
		}
	}
}

func TestEvaluateConfirmationWhenTakenToday(t *testing.T) {
	engine := NewEngine(testWindows(t))
	sched := mustSchedule(t, domain.TimeOfDay{Hour: 8, Minute: 0})
	st := domain.IntakeState{Enabled: true, Taken: true, LastTakenDate: testDay}

	actions := engine.Evaluate(at(8, 0), testDay, sched, st)
	if len(actions) != 1 {
		t.Fatalf("got %v, want exactly one action", kinds(actions))
	}
	a := actions[0]
	if a.Kind != domain.ActionSendCaregiverAlert || a.Alert != domain.AlertConfirmation {
		t.Errorf("got %v/%v, want confirmation alert", a.Kind, a.Alert)
	}
}

func TestEvaluateDayRolloverReset(t *testing.T) {
	engine := NewEngine(testWindows(t))
	sched := mustSchedule(t, domain.TimeOfDay{Hour: 8, Minute: 0})

	t.Run("stale true flag past the slot emits exactly one reset", func(t *testing.T) {
		st := domain.IntakeState{Enabled: true, Taken: true, LastTakenDate: "2026-08-29"}
		actions := engine.Evaluate(at(9, 0), testDay, sched, st)
		if len(actions) != 1 {
			t.Fatalf("got %v, want exactly one action", kinds(actions))
		}
		a := actions[0]
		if a.Kind != domain.ActionResetTaken {
			t.Fatalf("got %v, want reset", a.Kind)
		}
		if a.StaleDate != "2026-08-29" {
			t.Errorf("stale date: got %q, want 2026-08-29", a.StaleDate)
		}
	})

	t.Run("no reset once the stored flag is already false", func(t *testing.T) {
		st := domain.IntakeState{Enabled: true, Taken: false, LastTakenDate: "2026-08-29"}
		actions := engine.Evaluate(at(9, 0), testDay, sched, st)
		for _, a := range actions {
			if a.Kind == domain.ActionResetTaken {
				t.Errorf("reset re-emitted for already cleared flag")
			}
		}
	})

	t.Run("no reset before the slot instant", func(t *testing.T) {
		st := domain.IntakeState{Enabled: true, Taken: true, LastTakenDate: "2026-08-29"}
		actions := engine.Evaluate(at(7, 0), testDay, sched, st)
		for _, a := range actions {
			if a.Kind == domain.ActionResetTaken {
				t.Errorf("reset emitted before scheduled instant")
			}
		}
	})
}

func TestEvaluateMultiSlotIndependence(t *testing.T) {
	engine := NewEngine(testWindows(t))
	sched := mustSchedule(t, domain.TimeOfDay{Hour: 8, Minute: 0}, domain.TimeOfDay{Hour: 20, Minute: 0})
	st := domain.IntakeState{
		Enabled:       true,
		TakenSlots:    map[string][]domain.SlotID{testDay: {"08:00"}},
		LastTakenDate: testDay,
	}

	actions := engine.Evaluate(at(20, 0), testDay, sched, st)

	var reminder20, confirmation8 bool
	for _, a := range actions {
		switch {
		case a.Kind == domain.ActionSendPatientReminder && a.Slot == "20:00":
			reminder20 = true
		case a.Kind == domain.ActionSendCaregiverAlert && a.Alert == domain.AlertConfirmation && a.Slot == "08:00":
			confirmation8 = true
		}
	}
	if !reminder20 {
		t.Error("taking the 08:00 slot suppressed the 20:00 reminder")
	}
	if !confirmation8 {
		t.Error("missing confirmation for the taken 08:00 slot")
	}
}

func TestEvaluateNextNotificationAdvancement(t *testing.T) {
	engine := NewEngine(testWindows(t))
	sched := mustSchedule(t, domain.TimeOfDay{Hour: 8, Minute: 0}, domain.TimeOfDay{Hour: 20, Minute: 0})
	next := at(8, 0)

	t.Run("advances to the later slot today", func(t *testing.T) {
		st := domain.IntakeState{Enabled: true, NextNotificationTime: &next, TakenSlots: map[string][]domain.SlotID{}}
		actions := engine.Evaluate(at(8, 1), testDay, sched, st)

		var advance *domain.Action
		for i, a := range actions {
			if a.Kind == domain.ActionAdvanceNextNotification {
				advance = &actions[i]
			}
		}
		if advance == nil {
			t.Fatalf("no advancement emitted (actions: %v)", kinds(actions))
		}
		if want := at(20, 0); !advance.NextTime.Equal(want) {
			t.Errorf("next time: got %v, want %v", advance.NextTime, want)
		}
	})

	t.Run("no advancement without the precomputed field", func(t *testing.T) {
		st := domain.IntakeState{Enabled: true}
		actions := engine.Evaluate(at(8, 1), testDay, sched, st)
		for _, a := range actions {
			if a.Kind == domain.ActionAdvanceNextNotification {
				t.Error("advancement emitted for non-precomputed record")
			}
		}
	})
}

func TestEvaluateIdempotent(t *testing.T) {
	engine := NewEngine(testWindows(t))
	sched := mustSchedule(t, domain.TimeOfDay{Hour: 8, Minute: 0}, domain.TimeOfDay{Hour: 20, Minute: 0})

	states := []domain.IntakeState{
		{Enabled: true},
		{Enabled: true, Taken: true, LastTakenDate: testDay},
		{Enabled: true, Taken: true, LastTakenDate: "2026-08-29"},
		{Enabled: true, TakenSlots: map[string][]domain.SlotID{testDay: {"08:00"}}, LastTakenDate: testDay},
	}
	nows := []time.Time{at(7, 59), at(8, 20), at(20, 1)}

	for _, st := range states {
		for _, now := range nows {
			first := engine.Evaluate(now, testDay, sched, st)
			second := engine.Evaluate(now, testDay, sched, st)
			if len(first) != len(second) {
				t.Fatalf("now=%v: action counts differ: %d vs %d", now, len(first), len(second))
			}
			for i := range first {
				if first[i] != second[i] {
					t.Errorf("now=%v action[%d]: %+v vs %+v", now, i, first[i], second[i])
				}
			}
		}
	}
}
