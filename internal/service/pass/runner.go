package pass

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/tracing"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/decision"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/dispatch"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/schedule"
)

const (
	defaultWorkers     = 4
	defaultUnitTimeout = 5 * time.Second
)

// Runner drives one polling pass over every patient and medication.
// Patients are independent units of work and are processed by a bounded
// worker pool; a failing unit is logged and skipped, never fatal to the
// pass.
type Runner struct {
	repo       domain.PatientRepository
	dispatcher *dispatch.Dispatcher
	engine     *decision.Engine
	recorder   domain.PassRecorder
	metrics    *metrics.ReminderMetrics

	location    *time.Location
	now         func() time.Time
	workers     int
	unitTimeout time.Duration
}

type Option func(*Runner)

// WithClock replaces the wall clock, fixing "now" for deterministic runs.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithUnitTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.unitTimeout = d
		}
	}
}

func NewRunner(
	repo domain.PatientRepository,
	dispatcher *dispatch.Dispatcher,
	engine *decision.Engine,
	recorder domain.PassRecorder,
	reminderMetrics *metrics.ReminderMetrics,
	location *time.Location,
	opts ...Option,
) *Runner {
	r := &Runner{
		repo:        repo,
		dispatcher:  dispatcher,
		engine:      engine,
		recorder:    recorder,
		metrics:     reminderMetrics,
		location:    location,
		now:         time.Now,
		workers:     defaultWorkers,
		unitTimeout: defaultUnitTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Summary aggregates one pass for logging and the exit path. Failed counts
// isolated unit failures; the pass itself still completes.
type Summary struct {
	RunID       string
	Patients    int
	Medications int

	Resets           int
	PatientReminders int
	CaregiverAlerts  int
	Advancements     int

	Skipped int
	Failed  int
}

// Run executes one full pass. The returned error is non-nil only when the
// pass could not run at all (patient enumeration failed); per-unit failures
// are reflected in the Summary.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	now := r.now().In(r.location)
	today := now.Format(domain.DateLayout)
	started := time.Now()

	ctx, span := tracing.StartPassSpan(ctx, runID)
	defer span.End()

	slog.InfoContext(ctx, "reminder pass started",
		slog.String("run_id", runID),
		slog.Time("now", now),
		slog.String("today", today),
	)

	patients, err := r.repo.ListPatients(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list patients",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		tracing.RecordPassResult(span, 0, 0, 0, err)
		return nil, err
	}

	summary := &Summary{RunID: runID, Patients: len(patients)}
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		sem      = make(chan struct{}, r.workers)
		outcomes []domain.PassOutcomeRecord
	)

	for _, patient := range patients {
		wg.Add(1)
		sem <- struct{}{}
		go func(p *domain.Patient) {
			defer wg.Done()
			defer func() { <-sem }()

			records := r.processPatient(ctx, runID, now, today, p)

			mu.Lock()
			defer mu.Unlock()
			for _, rec := range records {
				summary.Medications++
				summary.Resets += rec.Resets
				summary.PatientReminders += rec.PatientReminders
				summary.CaregiverAlerts += rec.CaregiverAlerts
				summary.Advancements += rec.Advancements
				switch rec.Outcome {
				case domain.OutcomeSkipped:
					summary.Skipped++
				case domain.OutcomeFailed:
					summary.Failed++
				}
			}
			outcomes = append(outcomes, records...)
		}(patient)
	}
	wg.Wait()

	if r.recorder != nil {
		if err := r.recorder.RecordOutcomes(ctx, outcomes); err != nil {
			slog.WarnContext(ctx, "failed to record pass outcomes",
				slog.String("run_id", runID),
				slog.String("error", err.Error()),
			)
		}
		if err := r.recorder.Flush(ctx); err != nil {
			slog.WarnContext(ctx, "failed to flush pass recorder",
				slog.String("run_id", runID),
				slog.String("error", err.Error()),
			)
		}
	}

	if r.metrics != nil {
		r.metrics.RecordPassDuration(ctx, time.Since(started))
	}
	tracing.RecordPassResult(span, summary.Patients, summary.Medications, summary.Failed, nil)

	slog.InfoContext(ctx, "reminder pass completed",
		slog.String("run_id", runID),
		slog.Int("patients", summary.Patients),
		slog.Int("medications", summary.Medications),
		slog.Int("patient_reminders", summary.PatientReminders),
		slog.Int("caregiver_alerts", summary.CaregiverAlerts),
		slog.Int("resets", summary.Resets),
		slog.Int("advancements", summary.Advancements),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.Duration("duration", time.Since(started)),
	)

	return summary, nil
}

func (r *Runner) processPatient(ctx context.Context, runID string, now time.Time, today string, patient *domain.Patient) []domain.PassOutcomeRecord {
	ctx, span := tracing.StartPatientSpan(ctx, patient.ID)
	defer span.End()

	meds, err := r.repo.ListMedications(ctx, patient.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list medications, patient skipped",
			slog.String("run_id", runID),
			slog.String("patient_id", patient.ID),
			slog.String("error", err.Error()),
		)
		if r.metrics != nil {
			r.metrics.RecordUnitFailure(ctx, "list_medications")
		}
		return []domain.PassOutcomeRecord{{
			RunID:       runID,
			PatientID:   patient.ID,
			Outcome:     domain.OutcomeFailed,
			Reason:      err.Error(),
			EvaluatedAt: now,
		}}
	}

	records := make([]domain.PassOutcomeRecord, 0, len(meds))
	for _, med := range meds {
		unitCtx, cancel := context.WithTimeout(ctx, r.unitTimeout)
		records = append(records, r.processMedication(unitCtx, runID, now, today, patient, med))
		cancel()
	}
	return records
}

func (r *Runner) processMedication(ctx context.Context, runID string, now time.Time, today string, patient *domain.Patient, med *domain.MedicationRecord) domain.PassOutcomeRecord {
	outcome := domain.PassOutcomeRecord{
		RunID:          runID,
		PatientID:      patient.ID,
		MedicationID:   med.ID,
		MedicationName: med.Name,
		Outcome:        domain.OutcomeEvaluated,
		EvaluatedAt:    now,
	}

	sched, err := schedule.Normalize(med)
	if err != nil {
		slog.WarnContext(ctx, "medication has no usable schedule, skipped",
			slog.String("run_id", runID),
			slog.String("patient_id", patient.ID),
			slog.String("medication_id", med.ID),
			slog.String("error", err.Error()),
		)
		if r.metrics != nil {
			r.metrics.RecordMedicationProcessed(ctx, domain.OutcomeSkipped)
		}
		outcome.Outcome = domain.OutcomeSkipped
		outcome.Reason = err.Error()
		return outcome
	}

	actions := r.engine.Evaluate(now, today, sched, med.State)
	if r.metrics != nil {
		for _, a := range actions {
			r.metrics.RecordActionEmitted(ctx, a.Kind.String())
		}
	}

	// State changes land before any notification goes out, so a crash or
	// dispatch failure cannot re-trigger the same send on the next pass.
	failed := r.applyStateChanges(ctx, runID, patient, med, actions, &outcome)
	failed = r.dispatchNotifications(ctx, runID, patient, med, actions, &outcome) || failed

	if failed {
		outcome.Outcome = domain.OutcomeFailed
	}
	if r.metrics != nil {
		r.metrics.RecordMedicationProcessed(ctx, outcome.Outcome)
	}
	return outcome
}

func (r *Runner) applyStateChanges(ctx context.Context, runID string, patient *domain.Patient, med *domain.MedicationRecord, actions []domain.Action, outcome *domain.PassOutcomeRecord) bool {
	var failed bool
	for _, a := range actions {
		switch a.Kind {
		case domain.ActionResetTaken:
			if err := r.repo.ClearTaken(ctx, patient.ID, med.ID, a.Slot, a.StaleDate); err != nil {
				failed = true
				outcome.Reason = err.Error()
				r.logActionFailure(ctx, runID, patient, med, a, err)
				continue
			}
			outcome.Resets++
			slog.InfoContext(ctx, "taken flag reset",
				slog.String("run_id", runID),
				slog.String("patient_id", patient.ID),
				slog.String("medication_id", med.ID),
				slog.String("slot", string(a.Slot)),
			)

		case domain.ActionAdvanceNextNotification:
			if err := r.repo.SetNextNotificationTime(ctx, patient.ID, med.ID, a.NextTime); err != nil {
				failed = true
				outcome.Reason = err.Error()
				r.logActionFailure(ctx, runID, patient, med, a, err)
				continue
			}
			outcome.Advancements++
		}
	}
	return failed
}

func (r *Runner) dispatchNotifications(ctx context.Context, runID string, patient *domain.Patient, med *domain.MedicationRecord, actions []domain.Action, outcome *domain.PassOutcomeRecord) bool {
	var failed bool
	for _, a := range actions {
		switch a.Kind {
		case domain.ActionSendPatientReminder:
			if err := r.dispatcher.DispatchPatientReminder(ctx, patient, med, a); err != nil {
				failed = true
				outcome.Reason = err.Error()
				r.logActionFailure(ctx, runID, patient, med, a, err)
				continue
			}
			outcome.PatientReminders++

		case domain.ActionSendCaregiverAlert:
			if err := r.dispatcher.DispatchCaregiverAlert(ctx, patient, med, a); err != nil {
				failed = true
				outcome.Reason = err.Error()
				r.logActionFailure(ctx, runID, patient, med, a, err)
				continue
			}
			outcome.CaregiverAlerts++
		}
	}
	return failed
}

func (r *Runner) logActionFailure(ctx context.Context, runID string, patient *domain.Patient, med *domain.MedicationRecord, a domain.Action, err error) {
	slog.ErrorContext(ctx, "action failed",
		slog.String("run_id", runID),
		slog.String("patient_id", patient.ID),
		slog.String("medication_id", med.ID),
		slog.String("action", a.Kind.String()),
		slog.String("slot", string(a.Slot)),
		slog.String("error", err.Error()),
	)
	if r.metrics != nil {
		r.metrics.RecordUnitFailure(ctx, a.Kind.String())
	}
}
