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

	"eda/cmd"
	"eda/internal/adapters/out/postgres"
	"eda/internal/pkg/logging"
	"eda/internal/pkg/telemetry"

	"github.com/labstack/echo-contrib/pprof"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	retcode := 0
	defer func() {
		os.Exit(retcode)
	}()

	if err := run(ctx); err != nil {
		slog.ErrorContext(ctx, "eda stopped with error", slog.Any("error", err))
		retcode = 1
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	otelShutdown, err := telemetry.Setup(ctx, cfg.TelemetryConfig())
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		err = errors.Join(err, otelShutdown(context.Background()))
	}()

	logOpts := logging.Options{Level: cfg.Log.Level}
	if cfg.Telemetry.Enabled {
		logOpts.Extra = append(logOpts.Extra, telemetry.LogHandler(cfg.TelemetryConfig()))
	}
	logger := logging.New(os.Stdout, logOpts)
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Launching eda",
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
		slog.String("db_driver", cfg.DB.Driver),
		slog.String("events_driver", cfg.Events.Driver),
	)

	db, err := postgres.Open(cfg.DB.DatabaseConfig(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			err = errors.Join(err, sqlDB.Close())
		}
	}()

	app, err := cmd.NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, app.Close())
	}()

	server, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}
	if cfg.HTTP.Pprof {
		pprof.Register(server)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.HTTP.IP, cfg.HTTP.Port)
		logger.InfoContext(ctx, "Listening for requests", slog.String("addr", addr))
		errChan <- server.Start(addr)
	}()

	select {
	case err = <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("run http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
