package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	LogLevel  slog.Level
	Reminder  *ReminderConfig
	Firestore *FirestoreConfig
}

func Load() (*Config, error) {
	reminderConfig, err := LoadReminderConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:  parseLogLevel(os.Getenv("LOG_LEVEL")),
		Reminder:  reminderConfig,
		Firestore: LoadFirestoreConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
