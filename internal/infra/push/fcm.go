package push

import (
	"context"
	"fmt"
	"log/slog"

	"firebase.google.com/go/v4/messaging"
)

const (
	patientReminderTitle = "Time to take your medication"

	// route tells the app which screen to open when the push is tapped.
	notificationsRoute = "notifications"
)

type fcmSender struct {
	client *messaging.Client
}

func NewFCMSender(client *messaging.Client) Sender {
	return &fcmSender{client: client}
}

func (s *fcmSender) SendPatientReminder(ctx context.Context, token, medicationName, dosage string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: patientReminderTitle,
			Body:  fmt.Sprintf("Take: %s - %s", medicationName, dosage),
		},
		Data: map[string]string{
			"route": notificationsRoute,
		},
	}

	id, err := s.client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send patient reminder: %w", err)
	}

	slog.DebugContext(ctx, "patient reminder sent",
		slog.String("message_id", id),
	)
	return nil
}

func (s *fcmSender) SendCaregiverAlert(ctx context.Context, token, title, body string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"type":  "medication",
			"route": notificationsRoute,
		},
	}

	id, err := s.client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send caregiver alert: %w", err)
	}

	slog.DebugContext(ctx, "caregiver alert sent",
		slog.String("message_id", id),
	)
	return nil
}
