package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"loveuadAdmin/internal/collector"
	"loveuadAdmin/internal/config"
	"loveuadAdmin/internal/database"
	"loveuadAdmin/internal/external"
	"loveuadAdmin/internal/repository"
	"loveuadAdmin/internal/service"
	"loveuadAdmin/internal/storage"
)

// App connects to every backing system and wires the services. The returned
// closers must be closed on shutdown; the database is one of them.
func App(ctx context.Context, cfg *config.Config) (*service.Service, []io.Closer, error) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	closers := []io.Closer{closerFunc(db.CloseDB)}

	repo := repository.NewRepository(db.DB)

	var store storage.Storage
	if cfg.MinIO.Enabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			slog.Warn("featured image uploads disabled", "err", err)
		} else {
			store = minioClient
		}
	}

	var billing collector.BillingSource
	if cfg.GCP.ProjectID != "" && cfg.GCP.BillingAccount != "" && cfg.GCP.BillingDataset != "" {
		bq, err := external.NewBigQueryBilling(ctx, cfg.GCP)
		if err != nil {
			slog.Warn("billing source unavailable", "err", err)
		} else {
			billing = bq
			closers = append(closers, bq)
		}
	}

	var logs collector.LogSource
	if cfg.GCP.ProjectID != "" {
		logClient, err := external.NewCloudRunLogs(ctx, cfg.GCP.ProjectID, cfg.GCP.CloudRunService)
		if err != nil {
			slog.Warn("log source unavailable", "err", err)
		} else {
			logs = logClient
			closers = append(closers, logClient)
		}
	}

	var calls collector.CallSource
	if cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" {
		calls = external.NewTwilioCalls(cfg.Twilio)
	}

	if err := collector.Register(prometheus.DefaultRegisterer); err != nil {
		closeAll(closers)
		return nil, nil, fmt.Errorf("failed to register collector metrics: %w", err)
	}

	collectors := collector.NewSet(repo, billing, calls, logs, cfg.MainAppURL)

	services, err := service.NewService(repo, cfg, store, collectors)
	if err != nil {
		closeAll(closers)
		return nil, nil, err
	}

	slog.Info("services ready",
		"image_storage", store != nil,
		"billing", billing != nil,
		"logs", logs != nil,
		"twilio", calls != nil,
	)

	return services, closers, nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func closeAll(closers []io.Closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			slog.Warn("close failed", "err", err)
		}
	}
}

// Shutdown releases everything App opened, newest first.
func Shutdown(closers []io.Closer) {
	closeAll(closers)
}
