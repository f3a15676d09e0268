package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auth_api/internal/app"
	"auth_api/internal/config"
	"auth_api/internal/logger"

	"github.com/gin-gonic/gin"
)

const configDir = "configs"

func main() {
	// load configs/config.yml (+ AUTHAPI_* env)
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.Options{Level: logger.InfoLevel}).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	defer func() { _ = log.Sync() }()

	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// wire dependencies
	a, err := app.New(cfg, log)
	if err != nil {
		log.Fatalw("failed to init storage", "err", err)
	}

	// load users and start HTTP server
	if err := a.Start(); err != nil {
		log.Fatalw("error starting server", "err", err)
	}

	// graceful shutdown
	waitForShutdown(a, cfg.Server.ShutdownTimeout, log)
}

// waitForShutdown blocks until a termination signal (or a server failure),
// then stops the listener and flushes users to disk.
func waitForShutdown(a *app.App, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Infow("shutting down server...")
	case <-a.Done():
		log.Errorw("server stopped unexpectedly", "err", a.Err())
	}

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := a.Stop(ctx); err != nil {
		log.Fatalw("shutdown failed", "err", err)
	}
}
