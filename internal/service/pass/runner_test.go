package pass

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/push"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/decision"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/dispatch"
)

var testNow = time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)

func newTestRunner(t *testing.T, repo domain.PatientRepository, directory domain.CaregiverDirectory, sender push.Sender) *Runner {
	t.Helper()

	windows, err := decision.NewWindows(2, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dispatcher := dispatch.NewDispatcher(sender, directory, nil)
	engine := decision.NewEngine(windows)

	return NewRunner(repo, dispatcher, engine, nil, nil, time.UTC,
		WithClock(func() time.Time { return testNow }),
		WithWorkers(1),
	)
}

func intPtr(v int) *int { return &v }

func dueMedication(id string) *domain.MedicationRecord {
	return &domain.MedicationRecord{
		ID:           id,
		PatientID:    "patient-1",
		Name:         "Aspirin",
		Dosage:       "100mg",
		LegacyHour:   intPtr(8),
		LegacyMinute: intPtr(0),
		State:        domain.IntakeState{Enabled: true},
	}
}

func TestRunSendsDueReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockPatientRepository(ctrl)
	directory := domain.NewMockCaregiverDirectory(ctrl)
	sender := push.NewMockSender(ctrl)

	patient := &domain.Patient{ID: "patient-1", Name: "Ana", FCMToken: "token-1"}
	repo.EXPECT().ListPatients(gomock.Any()).Return([]*domain.Patient{patient}, nil)
	repo.EXPECT().ListMedications(gomock.Any(), "patient-1").
		Return([]*domain.MedicationRecord{dueMedication("med-1")}, nil)

	sender.EXPECT().
		SendPatientReminder(gomock.Any(), "token-1", "Aspirin", "100mg").
		Return(nil)

	runner := newTestRunner(t, repo, directory, sender)
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.PatientReminders != 1 {
		t.Errorf("patient reminders: got %d, want 1", summary.PatientReminders)
	}
	if summary.Failed != 0 {
		t.Errorf("failed: got %d, want 0", summary.Failed)
	}
}

func TestRunPersistsResetBeforeAnyDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockPatientRepository(ctrl)
	directory := domain.NewMockCaregiverDirectory(ctrl)
	sender := push.NewMockSender(ctrl)

	// Stale taken flag from yesterday and a reminder due now: the reset
	// write must land before the reminder push goes out.
	next := testNow
	med := dueMedication("med-1")
	med.ScheduledTimes = []domain.TimeOfDay{{Hour: 7, Minute: 0}, {Hour: 8, Minute: 0}}
	med.LegacyHour, med.LegacyMinute = nil, nil
	med.State = domain.IntakeState{
		Enabled:              true,
		TakenSlots:           map[string][]domain.SlotID{"2026-08-29": {"07:00"}},
		LastTakenDate:        "2026-08-29",
		NextNotificationTime: &next,
	}

	patient := &domain.Patient{ID: "patient-1", FCMToken: "token-1"}
	repo.EXPECT().ListPatients(gomock.Any()).Return([]*domain.Patient{patient}, nil)
	repo.EXPECT().ListMedications(gomock.Any(), "patient-1").
		Return([]*domain.MedicationRecord{med}, nil)

	gomock.InOrder(
		repo.EXPECT().
			ClearTaken(gomock.Any(), "patient-1", "med-1", domain.SlotID("07:00"), "2026-08-29").
			Return(nil),
		repo.EXPECT().
			SetNextNotificationTime(gomock.Any(), "patient-1", "med-1", time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC)).
			Return(nil),
		sender.EXPECT().
			SendPatientReminder(gomock.Any(), "token-1", "Aspirin", "100mg").
			Return(nil),
	)

	runner := newTestRunner(t, repo, directory, sender)
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Resets != 1 {
		t.Errorf("resets: got %d, want 1", summary.Resets)
	}
	if summary.Advancements != 1 {
		t.Errorf("advancements: got %d, want 1", summary.Advancements)
	}
}

func TestRunIsolatesFailingPatient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockPatientRepository(ctrl)
	directory := domain.NewMockCaregiverDirectory(ctrl)
	sender := push.NewMockSender(ctrl)

	broken := &domain.Patient{ID: "patient-broken"}
	healthy := &domain.Patient{ID: "patient-1", FCMToken: "token-1"}

	repo.EXPECT().ListPatients(gomock.Any()).Return([]*domain.Patient{broken, healthy}, nil)
	repo.EXPECT().ListMedications(gomock.Any(), "patient-broken").
		Return(nil, errors.New("firestore unavailable"))
	repo.EXPECT().ListMedications(gomock.Any(), "patient-1").
		Return([]*domain.MedicationRecord{dueMedication("med-1")}, nil)

	sender.EXPECT().
		SendPatientReminder(gomock.Any(), "token-1", "Aspirin", "100mg").
		Return(nil)

	runner := newTestRunner(t, repo, directory, sender)
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("pass must not abort on a unit failure: %v", err)
	}
	if summary.Failed != 1 {
		t.Errorf("failed: got %d, want 1", summary.Failed)
	}
	if summary.PatientReminders != 1 {
		t.Errorf("patient reminders: got %d, want 1", summary.PatientReminders)
	}
}

func TestRunSkipsMedicationWithoutSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockPatientRepository(ctrl)
	directory := domain.NewMockCaregiverDirectory(ctrl)
	sender := push.NewMockSender(ctrl)

	noSchedule := &domain.MedicationRecord{
		ID:        "med-broken",
		PatientID: "patient-1",
		Name:      "Mystery",
		State:     domain.IntakeState{Enabled: true},
	}

	patient := &domain.Patient{ID: "patient-1", FCMToken: "token-1"}
	repo.EXPECT().ListPatients(gomock.Any()).Return([]*domain.Patient{patient}, nil)
	repo.EXPECT().ListMedications(gomock.Any(), "patient-1").
		Return([]*domain.MedicationRecord{noSchedule, dueMedication("med-1")}, nil)

	sender.EXPECT().
		SendPatientReminder(gomock.Any(), "token-1", "Aspirin", "100mg").
		Return(nil)

	runner := newTestRunner(t, repo, directory, sender)
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Skipped != 1 {
		t.Errorf("skipped: got %d, want 1", summary.Skipped)
	}
	if summary.Medications != 2 {
		t.Errorf("medications: got %d, want 2", summary.Medications)
	}
}

func TestRunFailsWhenPatientsCannotBeListed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockPatientRepository(ctrl)
	directory := domain.NewMockCaregiverDirectory(ctrl)
	sender := push.NewMockSender(ctrl)

	repo.EXPECT().ListPatients(gomock.Any()).Return(nil, errors.New("firestore unavailable"))

	runner := newTestRunner(t, repo, directory, sender)
	if _, err := runner.Run(context.Background()); err == nil {
		t.Fatal("expected error when patient enumeration fails")
	}
}

func TestRunRecordsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockPatientRepository(ctrl)
	directory := domain.NewMockCaregiverDirectory(ctrl)
	sender := push.NewMockSender(ctrl)
	recorder := domain.NewMockPassRecorder(ctrl)

	patient := &domain.Patient{ID: "patient-1", FCMToken: "token-1"}
	repo.EXPECT().ListPatients(gomock.Any()).Return([]*domain.Patient{patient}, nil)
	repo.EXPECT().ListMedications(gomock.Any(), "patient-1").
		Return([]*domain.MedicationRecord{dueMedication("med-1")}, nil)
	sender.EXPECT().SendPatientReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	recorder.EXPECT().
		RecordOutcomes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.PassOutcomeRecord) error {
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			rec := records[0]
			if rec.Outcome != domain.OutcomeEvaluated {
				t.Errorf("outcome: got %q", rec.Outcome)
			}
			if rec.PatientReminders != 1 {
				t.Errorf("patient reminders: got %d, want 1", rec.PatientReminders)
			}
			if rec.RunID == "" {
				t.Error("run id missing")
			}
			return nil
		})
	recorder.EXPECT().Flush(gomock.Any()).Return(nil)

	windows, err := decision.NewWindows(2, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	runner := NewRunner(
		repo,
		dispatch.NewDispatcher(sender, directory, nil),
		decision.NewEngine(windows),
		recorder,
		nil,
		time.UTC,
		WithClock(func() time.Time { return testNow }),
		WithWorkers(1),
	)
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
