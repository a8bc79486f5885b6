package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/vuxmai/product-updated-sink/internal/config"
	"github.com/vuxmai/product-updated-sink/internal/http"
	"github.com/vuxmai/product-updated-sink/internal/log"
	"github.com/vuxmai/product-updated-sink/internal/telemetry"
	"github.com/vuxmai/product-updated-sink/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running product updated sink: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log  config.Log
		HTTP config.HTTP
		Otel config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	interruptChan := cmdutil.InterruptChan()

	svc := http.New(cfg.HTTP, logger)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}
	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-interruptChan

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}
	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
