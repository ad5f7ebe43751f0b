package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"diabetes-risk/internal/artifact"
	"diabetes-risk/internal/common/config"
	"diabetes-risk/internal/common/logger"
	"diabetes-risk/internal/common/metrics"
	"diabetes-risk/internal/common/observability"
	"diabetes-risk/internal/predict"
	"diabetes-risk/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load configuration", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	// The artifact is loaded once and cached for the process lifetime.
	// Any load failure is fatal.
	bundle, err := artifact.Load(cfg.Model.ArtifactPath)
	if err != nil {
		log.WithError(err).Error("failed to load model artifact", map[string]interface{}{
			"path": cfg.Model.ArtifactPath,
		})
		os.Exit(1)
	}
	metrics.ArtifactInfo.WithLabelValues(
		bundle.Model.Type,
		strconv.Itoa(len(bundle.Features)),
	).Set(bundle.Threshold)

	log.Info("model artifact loaded", map[string]interface{}{
		"path":      cfg.Model.ArtifactPath,
		"modelType": bundle.Model.Type,
		"features":  len(bundle.Features),
		"threshold": bundle.Threshold,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	service := predict.NewService(bundle, log, obs)
	handler := predict.NewHandler(service, log)
	router := server.NewRouter(cfg, handler, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		log.Info("starting server", map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.App.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server failed", nil)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown", nil)
	}
}
