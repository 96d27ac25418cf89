package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"med-schedule/internal/config"
	"med-schedule/internal/platform/logger"
	"med-schedule/internal/platform/metrics"
	"med-schedule/internal/router"
	"med-schedule/internal/seed"
)

// @title med-schedule API
// @version 1.0
// @description Recordatorio de tomas: cronograma del día agrupado por hora, próxima toma y estado de cada registro.
// @BasePath /
func main() {
	cfg, err := config.Load(os.Getenv("MEDSCHED_CONFIG"))
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	defer func() { _ = log.Sync() }()

	m := metrics.New()
	medsSvc, logSvc := router.NewServices(m)

	if cfg.Seed.Enabled {
		records, err := seed.FromFileOrDefaults(cfg.Seed.File)
		if err != nil {
			log.Error("seed error", map[string]any{"err": err})
			os.Exit(1)
		}
		if _, err := seed.Load(context.Background(), medsSvc, records, log); err != nil {
			log.Error("seed error", map[string]any{"err": err})
			os.Exit(1)
		}
	}

	r := router.NewRouter(router.Options{
		Logger:    log,
		Metrics:   m,
		Medicines: medsSvc,
		DoseLog:   logSvc,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"err": err})
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"err": err})
	}
}
