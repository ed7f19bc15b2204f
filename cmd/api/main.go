package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loveuadAdmin/cmd/app"
	"loveuadAdmin/internal/config"
	handlers "loveuadAdmin/internal/handler"
	"loveuadAdmin/internal/logger"
	"loveuadAdmin/internal/router"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.LogLevel)

	if cfg.SecretKey == "" {
		slog.Error("ADMIN_SECRET_KEY is not set")
		os.Exit(1)
	}
	if cfg.AdminPassword == "" {
		slog.Warn("ADMIN_PASSWORD is not set; logins will be rejected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, closers, err := app.App(ctx, cfg)
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer app.Shutdown(closers)

	handler := handlers.NewHandlers(services, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router.New(handler, nil),
		ReadHeaderTimeout: 10 * time.Second,
		// the metrics report calls several remote APIs in sequence
		WriteTimeout: 2 * time.Minute,
	}

	go func() {
		slog.Info("server started", "addr", server.Addr, "database", cfg.DB.DbNAME)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
	slog.Info("server stopped")
}
