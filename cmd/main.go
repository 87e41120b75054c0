package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/KasumiMercury/primind-medication-reminder/internal/config"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/passrecorder"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/push"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/decision"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/dispatch"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/pass"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName:    "medication-reminder",
		ServiceVersion: Version,
		LogLevel:       cfg.LogLevel,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	location, err := time.LoadLocation(cfg.Reminder.Timezone)
	if err != nil {
		slog.Error("failed to load timezone", slog.String("error", err.Error()))
		return 1
	}

	var appOpts []option.ClientOption
	if cfg.Firestore.CredentialsJSON != "" {
		appOpts = append(appOpts, option.WithCredentialsJSON([]byte(cfg.Firestore.CredentialsJSON)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID}, appOpts...)
	if err != nil {
		slog.Error("failed to initialize firebase app", slog.String("error", err.Error()))
		return 1
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		slog.Error("failed to create firestore client", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := firestoreClient.Close(); err != nil {
			slog.Warn("failed to close firestore client", slog.String("error", err.Error()))
		}
	}()

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		slog.Error("failed to create messaging client", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// Pass result recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := passrecorder.LoadConfig()
	recorder, err := passrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize pass result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close pass result recorder", slog.String("error", err.Error()))
		}
	}()

	windows, err := decision.NewWindows(cfg.Reminder.ToleranceMinutes, cfg.Reminder.DelayThresholdMinutes)
	if err != nil {
		slog.Error("invalid reminder windows", slog.String("error", err.Error()))
		return 1
	}

	repo := repository.NewPatientRepository(firestoreClient)
	directory := repository.NewCaregiverDirectory(firestoreClient)
	sender := push.NewFCMSender(messagingClient)
	dispatcher := dispatch.NewDispatcher(sender, directory, reminderMetrics)
	engine := decision.NewEngine(windows)

	runner := pass.NewRunner(
		repo,
		dispatcher,
		engine,
		recorder,
		reminderMetrics,
		location,
		pass.WithWorkers(cfg.Reminder.PassWorkers),
		pass.WithUnitTimeout(time.Duration(cfg.Reminder.UnitTimeoutSeconds)*time.Second),
	)

	summary, err := runner.Run(ctx)
	if err != nil {
		slog.Error("reminder pass failed", slog.String("error", err.Error()))
		return 1
	}

	// Unit failures are already logged and counted; a completed pass
	// exits cleanly so the scheduler does not retry the whole batch.
	slog.Info("reminder pass finished",
		slog.String("run_id", summary.RunID),
		slog.Int("patients", summary.Patients),
		slog.Int("medications", summary.Medications),
		slog.Int("patient_reminders", summary.PatientReminders),
		slog.Int("caregiver_alerts", summary.CaregiverAlerts),
		slog.Int("resets", summary.Resets),
		slog.Int("advancements", summary.Advancements),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
	)

	return 0
}
