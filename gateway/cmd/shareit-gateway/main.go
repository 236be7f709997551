package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/shareit-dev/shareit/gateway/internal/router"
	"github.com/shareit-dev/shareit/gateway/internal/setup"
	"github.com/shareit-dev/shareit/shared/config"
	"github.com/shareit-dev/shareit/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := setup.SetupDependencies(cfg)
	defer deps.Limiter.Stop()
	if deps.BookingLimiter != nil {
		defer deps.BookingLimiter.Stop()
	}

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = strconv.Itoa(cfg.Public.Gateway.Port)
	}

	srv := &http.Server{
		Addr: ":" + httpPort,
		Handler: router.New(deps.Handler, router.Options{
			AllowedOrigins: cfg.Public.Gateway.AllowedOrigins,
			Limiter:        deps.Limiter,
			BookingLimiter: deps.BookingLimiter,
			RequestTimeout: cfg.Public.Gateway.RequestTimeout,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Log.Info("gateway started", "port", httpPort, "server_url", cfg.Public.Gateway.ServerURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("gateway failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
}
