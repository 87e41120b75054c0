package config

import (
	"os"
)

const (
	serviceAccountKeyEnv = "SERVICE_ACCOUNT_KEY"
	gcloudProjectIDEnv   = "GCLOUD_PROJECT_ID"
	googleCloudProject   = "GOOGLE_CLOUD_PROJECT"
)

type FirestoreConfig struct {
	// CredentialsJSON holds the raw service account key. Empty when
	// running against the emulator or with ambient credentials.
	CredentialsJSON string
	ProjectID       string
}

func LoadFirestoreConfig() *FirestoreConfig {
	projectID := os.Getenv(gcloudProjectIDEnv)
	if projectID == "" {
		projectID = os.Getenv(googleCloudProject)
	}

	return &FirestoreConfig{
		CredentialsJSON: os.Getenv(serviceAccountKeyEnv),
		ProjectID:       projectID,
	}
}
