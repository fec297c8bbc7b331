package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskmgmt/notify-api/internal/client"
	"github.com/taskmgmt/notify-api/internal/config"
	"github.com/taskmgmt/notify-api/internal/domain"
	"github.com/taskmgmt/notify-api/internal/email"
	"github.com/taskmgmt/notify-api/internal/pipeline"
	"github.com/taskmgmt/notify-api/internal/platform/logger"
	"github.com/taskmgmt/notify-api/internal/platform/postgres"
)

// shutdownTimeout bounds how long in-flight requests get to finish after a
// termination signal. A running invocation can take a while, so this is
// generous.
const shutdownTimeout = 60 * time.Second

// application holds the initialized dependencies of one process.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sql.DB
	orchestrator *pipeline.Orchestrator
}

// newApplication loads configuration, sets up logging and the database,
// optionally runs migrations, and wires the notification pipeline.
func newApplication(skipMigrations bool) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"reminder_mode", cfg.Reminder.Mode,
		"notification_service_configured", cfg.HasNotificationService(),
		"task_service_configured", cfg.HasTaskService(),
		"smtp_configured", cfg.HasSMTP())

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if !skipMigrations {
		if err := runMigrations(db, appLogger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	app := &application{
		config:       cfg,
		logger:       appLogger,
		db:           db,
		orchestrator: buildPipeline(cfg, db, appLogger),
	}
	return app, nil
}

// buildPipeline constructs the selector, resolver, and dispatcher from
// configuration. Steps without configuration get a nil collaborator, which
// the dispatcher turns into per-task skip-with-logged-error behavior.
func buildPipeline(cfg *config.Config, db *sql.DB, appLogger *slog.Logger) *pipeline.Orchestrator {
	// Mode was validated by config.Load; ParseReminderMode cannot fail here.
	mode, _ := domainMode(cfg)

	var sender email.Sender
	if cfg.HasSMTP() {
		sender = email.NewSMTPSender(cfg.SMTP)
	} else {
		appLogger.Warn("smtp is not configured, email delivery will be skipped")
	}

	var records pipeline.RecordCreator
	if cfg.HasNotificationService() {
		records = client.NewNotificationClient(cfg.NotificationService.URL, nil)
	} else {
		appLogger.Warn("notification service is not configured, record creation will be skipped")
	}

	var flags pipeline.FlagUpdater
	if cfg.HasTaskService() {
		flags = client.NewTaskClient(cfg.TaskService.URL, cfg.TaskService.APIKey, nil)
	} else {
		appLogger.Warn("task service is not configured, flag updates will be skipped")
	}

	return pipeline.NewOrchestrator(
		pipeline.NewSelector(postgres.NewPostgresTaskStore(db), mode),
		pipeline.NewResolver(postgres.NewPostgresUserStore(db)),
		pipeline.NewDispatcher(mode, sender, records, flags),
	)
}

// serve runs the HTTP trigger surface until a termination signal arrives.
func (app *application) serve() error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.setupRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		app.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// domainMode converts the validated config mode string.
func domainMode(cfg *config.Config) (domain.ReminderMode, error) {
	return domain.ParseReminderMode(cfg.Reminder.Mode)
}

// close releases process resources.
func (app *application) close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
