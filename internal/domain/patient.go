package domain

import "time"

// Patient is a tracked person with medications to remind.
type Patient struct {
	ID       string
	Name     string
	FCMToken string
}

// DisplayName returns the patient name for alert texts, with a neutral
// fallback when the record has none.
func (p *Patient) DisplayName() string {
	if p.Name == "" {
		return "Patient"
	}
	return p.Name
}

// Caregiver is a person linked to one or more patients who receives
// confirmation and delay alerts.
type Caregiver struct {
	ID       string
	FCMToken string
}

// CaregiverLink relates a patient to a caregiver. Many-to-many; resolved
// fresh every pass.
type CaregiverLink struct {
	PatientID   string
	CaregiverID string
}

// CaregiverNotification is the persisted caregiver-side notification entry
// written alongside each caregiver push.
type CaregiverNotification struct {
	Title     string
	Body      string
	Type      string
	Read      bool
	Timestamp time.Time
}

const NotificationTypeMedication = "medication"

func NewCaregiverNotification(title, body string, at time.Time) *CaregiverNotification {
	return &CaregiverNotification{
		Title:     title,
		Body:      body,
		Type:      NotificationTypeMedication,
		Read:      false,
		Timestamp: at,
	}
}
