package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/testcontainers/testcontainers-go/modules/gcloud"
)

const (
	emulatorImage = "gcr.io/google.com/cloudsdktool/google-cloud-cli:469.0.0-emulators"
	testProjectID = "reminder-test"
)

// SetupFirestoreEmulator starts a Firestore emulator container and returns
// a client bound to it. Tests are skipped when Docker is unavailable.
func SetupFirestoreEmulator(ctx context.Context, t *testing.T) (*firestore.Client, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start firestore emulator: %v", r)
		}
	}()

	container, err := gcloud.RunFirestore(ctx, emulatorImage, gcloud.WithProjectID(testProjectID))
	if err != nil {
		t.Skipf("failed to start firestore emulator: %v", err)
	}

	t.Setenv("FIRESTORE_EMULATOR_HOST", container.URI)

	client, err := firestore.NewClient(ctx, testProjectID)
	if err != nil {
		t.Skipf("failed to connect firestore emulator: %v", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close firestore client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate firestore emulator: %v", err)
		}
	}

	return client, cleanup
}
