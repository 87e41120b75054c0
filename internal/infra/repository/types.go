package repository

import "time"

// Document layout:
//
//	users/{uid}                    user/caregiver record
//	users/{uid}/medications/{mid}  medication record
//	users/{uid}/notifications/{n}  caregiver-side notification entries
//	caregiver_links/{id}           patient-to-caregiver relation
const (
	usersCollection          = "users"
	medicationsCollection    = "medications"
	notificationsCollection  = "notifications"
	caregiverLinksCollection = "caregiver_links"
)

type userRecord struct {
	Name                string `firestore:"name"`
	FCMToken            string `firestore:"fcmToken"`
	UnreadNotifications int64  `firestore:"unreadNotifications"`
}

type scheduledTimeRecord struct {
	Hour   int `firestore:"hour"`
	Minute int `firestore:"minute"`
}

// medicationRecord covers every schema revision still present in the data:
// the legacy single hourToTake/minuteToTake pair with the whole-medication
// taken flag, the multi-slot scheduledTimes list with date-keyed takenTimes,
// and the precomputed nextNotificationTime field.
type medicationRecord struct {
	Name    string `firestore:"name"`
	Dosage  string `firestore:"dosage"`
	Enabled bool   `firestore:"enabled"`

	HourToTake   *int `firestore:"hourToTake"`
	MinuteToTake *int `firestore:"minuteToTake"`
	Taken        bool `firestore:"taken"`

	ScheduledTimes []scheduledTimeRecord `firestore:"scheduledTimes"`
	TakenTimes     map[string][]string   `firestore:"takenTimes"`

	LastTakenDate        string     `firestore:"lastTakenDate"`
	NextNotificationTime *time.Time `firestore:"nextNotificationTime"`
}

type linkRecord struct {
	PatientID   string `firestore:"patientId"`
	CaregiverID string `firestore:"caregiverId"`
}

type notificationRecord struct {
	Title     string    `firestore:"title"`
	Body      string    `firestore:"body"`
	Type      string    `firestore:"type"`
	Read      bool      `firestore:"read"`
	Timestamp time.Time `firestore:"timestamp"`
}
