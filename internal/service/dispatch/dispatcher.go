package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/push"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/metrics"
)

// Dispatcher turns decided notification actions into push sends and
// caregiver-record writes. Every send and write is isolated: one failure
// is logged and counted, the rest of the fan-out continues.
type Dispatcher struct {
	push      push.Sender
	directory domain.CaregiverDirectory
	metrics   *metrics.ReminderMetrics
}

func NewDispatcher(sender push.Sender, directory domain.CaregiverDirectory, m *metrics.ReminderMetrics) *Dispatcher {
	return &Dispatcher{
		push:      sender,
		directory: directory,
		metrics:   m,
	}
}

// DispatchPatientReminder pushes the reminder to the patient's device.
// A patient without a registered token is a logged skip, not an error.
func (d *Dispatcher) DispatchPatientReminder(ctx context.Context, patient *domain.Patient, med *domain.MedicationRecord, action domain.Action) error {
	if patient.FCMToken == "" {
		slog.InfoContext(ctx, "patient has no push destination, reminder skipped",
			slog.String("patient_id", patient.ID),
			slog.String("medication_id", med.ID),
			slog.String("slot", string(action.Slot)),
		)
		if d.metrics != nil {
			d.metrics.RecordPatientPush(ctx, "skipped")
		}
		return nil
	}

	if err := d.push.SendPatientReminder(ctx, patient.FCMToken, med.Name, med.Dosage); err != nil {
		slog.ErrorContext(ctx, "failed to send patient reminder",
			slog.String("patient_id", patient.ID),
			slog.String("medication_id", med.ID),
			slog.String("slot", string(action.Slot)),
			slog.String("error", err.Error()),
		)
		if d.metrics != nil {
			d.metrics.RecordPatientPush(ctx, "failed")
		}
		return err
	}

	slog.InfoContext(ctx, "patient reminder sent",
		slog.String("patient_id", patient.ID),
		slog.String("medication_id", med.ID),
		slog.String("medication", med.Name),
		slog.String("slot", string(action.Slot)),
	)
	if d.metrics != nil {
		d.metrics.RecordPatientPush(ctx, "sent")
	}
	return nil
}

// DispatchCaregiverAlert resolves the patient's caregiver links and, for
// each caregiver, sends the push (when a token exists) and writes the
// persisted notification entry plus the unread counter increment.
func (d *Dispatcher) DispatchCaregiverAlert(ctx context.Context, patient *domain.Patient, med *domain.MedicationRecord, action domain.Action) error {
	links, err := d.directory.LinksForPatient(ctx, patient.ID)
	if err != nil {
		return fmt.Errorf("failed to resolve caregiver links for patient %s: %w", patient.ID, err)
	}

	title, body := alertMessage(action, patient, med)

	var failed int
	for _, link := range links {
		if link.CaregiverID == "" {
			continue
		}
		if err := d.notifyCaregiver(ctx, link.CaregiverID, title, body, action); err != nil {
			failed++
			slog.ErrorContext(ctx, "failed to notify caregiver",
				slog.String("patient_id", patient.ID),
				slog.String("medication_id", med.ID),
				slog.String("caregiver_id", link.CaregiverID),
				slog.String("alert_kind", action.Alert.String()),
				slog.String("error", err.Error()),
			)
			if d.metrics != nil {
				d.metrics.RecordCaregiverAlert(ctx, action.Alert.String(), "failed")
			}
			continue
		}
		if d.metrics != nil {
			d.metrics.RecordCaregiverAlert(ctx, action.Alert.String(), "sent")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d caregiver notifications failed", failed, len(links))
	}
	return nil
}

func (d *Dispatcher) notifyCaregiver(ctx context.Context, caregiverID, title, body string, action domain.Action) error {
	caregiver, err := d.directory.GetCaregiver(ctx, caregiverID)
	if err != nil {
		return fmt.Errorf("failed to load caregiver record: %w", err)
	}

	// Push only when a token is registered; the persisted entry is written
	// either way so the alert shows up in the app.
	if caregiver.FCMToken != "" {
		if err := d.push.SendCaregiverAlert(ctx, caregiver.FCMToken, title, body); err != nil {
			slog.WarnContext(ctx, "caregiver push failed, persisted entry still written",
				slog.String("caregiver_id", caregiverID),
				slog.String("error", err.Error()),
			)
		}
	}

	n := domain.NewCaregiverNotification(title, body, time.Now().UTC())
	if err := d.directory.AppendNotification(ctx, caregiverID, n); err != nil {
		return fmt.Errorf("failed to append caregiver notification: %w", err)
	}
	if err := d.directory.IncrementUnread(ctx, caregiverID); err != nil {
		return fmt.Errorf("failed to increment unread counter: %w", err)
	}

	slog.InfoContext(ctx, "caregiver notified",
		slog.String("caregiver_id", caregiverID),
		slog.String("alert_kind", action.Alert.String()),
	)
	return nil
}

func alertMessage(action domain.Action, patient *domain.Patient, med *domain.MedicationRecord) (title, body string) {
	name := patient.DisplayName()
	switch action.Alert {
	case domain.AlertConfirmation:
		title = fmt.Sprintf("%s took their medication", name)
		body = fmt.Sprintf("%s was taken today (%s)", med.Name, action.ScheduledAt.Format(domain.DateLayout))
	case domain.AlertDelay:
		title = fmt.Sprintf("%s has NOT taken their medication", name)
		body = fmt.Sprintf("%s was due at %s", med.Name, action.ScheduledAt.Format("15:04"))
	}
	return title, body
}
