package push

import "context"

//go:generate mockgen -source=push.go -destination=push_mock.go -package=push

// Sender delivers push notifications to one device token. Each send is
// independent; a failed send must not prevent the caller's other sends.
type Sender interface {
	SendPatientReminder(ctx context.Context, token, medicationName, dosage string) error
	SendCaregiverAlert(ctx context.Context, token, title, body string) error
}
