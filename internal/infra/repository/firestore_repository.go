package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type firestoreRepository struct {
	client *firestore.Client
}

func NewPatientRepository(client *firestore.Client) domain.PatientRepository {
	return &firestoreRepository{client: client}
}

func NewCaregiverDirectory(client *firestore.Client) domain.CaregiverDirectory {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) ListPatients(ctx context.Context) ([]*domain.Patient, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var patients []*domain.Patient
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}

		var rec userRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode user %s: %w", doc.Ref.ID, err)
		}

		patients = append(patients, &domain.Patient{
			ID:       doc.Ref.ID,
			Name:     rec.Name,
			FCMToken: rec.FCMToken,
		})
	}

	return patients, nil
}

func (r *firestoreRepository) ListMedications(ctx context.Context, patientID string) ([]*domain.MedicationRecord, error) {
	iter := r.medications(patientID).Documents(ctx)
	defer iter.Stop()

	var meds []*domain.MedicationRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate medications for patient %s: %w", patientID, err)
		}

		var rec medicationRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("%w: medication %s: %v", ErrInvalidMedicationData, doc.Ref.ID, err)
		}

		meds = append(meds, toDomainMedication(doc.Ref.ID, patientID, &rec))
	}

	return meds, nil
}

func (r *firestoreRepository) ClearTaken(ctx context.Context, patientID, medicationID string, slot domain.SlotID, staleDate string) error {
	ref := r.medications(patientID).Doc(medicationID)

	snap, err := ref.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read medication %s: %w", medicationID, err)
	}

	var rec medicationRecord
	if err := snap.DataTo(&rec); err != nil {
		return fmt.Errorf("%w: medication %s: %v", ErrInvalidMedicationData, medicationID, err)
	}

	if rec.TakenTimes != nil {
		remaining := slices.DeleteFunc(slices.Clone(rec.TakenTimes[staleDate]), func(s string) bool {
			return s == string(slot)
		})
		var value any = remaining
		if len(remaining) == 0 {
			value = firestore.Delete
		}
		_, err = ref.Update(ctx, []firestore.Update{
			{FieldPath: firestore.FieldPath{"takenTimes", staleDate}, Value: value},
		})
	} else {
		_, err = ref.Update(ctx, []firestore.Update{
			{Path: "taken", Value: false},
		})
	}
	if err != nil {
		return fmt.Errorf("failed to clear taken for medication %s: %w", medicationID, err)
	}
	return nil
}

func (r *firestoreRepository) SetNextNotificationTime(ctx context.Context, patientID, medicationID string, next time.Time) error {
	_, err := r.medications(patientID).Doc(medicationID).Update(ctx, []firestore.Update{
		{Path: "nextNotificationTime", Value: next},
	})
	if err != nil {
		return fmt.Errorf("failed to set next notification time for medication %s: %w", medicationID, err)
	}
	return nil
}

func (r *firestoreRepository) LinksForPatient(ctx context.Context, patientID string) ([]domain.CaregiverLink, error) {
	iter := r.client.Collection(caregiverLinksCollection).
		Where("patientId", "==", patientID).
		Documents(ctx)
	defer iter.Stop()

	var links []domain.CaregiverLink
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate caregiver links for patient %s: %w", patientID, err)
		}

		var rec linkRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode caregiver link %s: %w", doc.Ref.ID, err)
		}

		links = append(links, domain.CaregiverLink{
			PatientID:   rec.PatientID,
			CaregiverID: rec.CaregiverID,
		})
	}

	return links, nil
}

func (r *firestoreRepository) GetCaregiver(ctx context.Context, caregiverID string) (*domain.Caregiver, error) {
	snap, err := r.client.Collection(usersCollection).Doc(caregiverID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCaregiverNotFound, caregiverID, err)
	}

	var rec userRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode caregiver %s: %w", caregiverID, err)
	}

	return &domain.Caregiver{
		ID:       caregiverID,
		FCMToken: rec.FCMToken,
	}, nil
}

func (r *firestoreRepository) AppendNotification(ctx context.Context, caregiverID string, n *domain.CaregiverNotification) error {
	if n == nil {
		return ErrInvalidNotificationData
	}

	rec := notificationRecord{
		Title:     n.Title,
		Body:      n.Body,
		Type:      n.Type,
		Read:      n.Read,
		Timestamp: n.Timestamp,
	}

	_, err := r.client.Collection(usersCollection).Doc(caregiverID).
		Collection(notificationsCollection).
		NewDoc().
		Create(ctx, rec)
	if err != nil {
		return fmt.Errorf("failed to write notification for caregiver %s: %w", caregiverID, err)
	}
	return nil
}

func (r *firestoreRepository) IncrementUnread(ctx context.Context, caregiverID string) error {
	_, err := r.client.Collection(usersCollection).Doc(caregiverID).Update(ctx, []firestore.Update{
		{Path: "unreadNotifications", Value: firestore.Increment(1)},
	})
	if err != nil {
		return fmt.Errorf("failed to increment unread counter for caregiver %s: %w", caregiverID, err)
	}
	return nil
}

func (r *firestoreRepository) medications(patientID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(patientID).Collection(medicationsCollection)
}

func toDomainMedication(id, patientID string, rec *medicationRecord) *domain.MedicationRecord {
	med := &domain.MedicationRecord{
		ID:           id,
		PatientID:    patientID,
		Name:         rec.Name,
		Dosage:       rec.Dosage,
		LegacyHour:   rec.HourToTake,
		LegacyMinute: rec.MinuteToTake,
		State: domain.IntakeState{
			Enabled:              rec.Enabled,
			Taken:                rec.Taken,
			LastTakenDate:        rec.LastTakenDate,
			NextNotificationTime: rec.NextNotificationTime,
		},
	}

	for _, st := range rec.ScheduledTimes {
		med.ScheduledTimes = append(med.ScheduledTimes, domain.TimeOfDay{Hour: st.Hour, Minute: st.Minute})
	}

	if rec.TakenTimes != nil {
		med.State.TakenSlots = make(map[string][]domain.SlotID, len(rec.TakenTimes))
		for date, slots := range rec.TakenTimes {
			ids := make([]domain.SlotID, 0, len(slots))
			for _, s := range slots {
				ids = append(ids, domain.SlotID(s))
			}
			med.State.TakenSlots[date] = ids
		}
	}

	return med
}
