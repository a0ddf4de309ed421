package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/BoardGameKit/internal/app"
	"ctchen222/BoardGameKit/internal/config"
	"ctchen222/BoardGameKit/internal/logger"
	"ctchen222/BoardGameKit/internal/telemetry"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (default $BGK_CONFIG or ./config.yml)")
	flag.Parse()

	os.Exit(run(*configPath))
}

func run(configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize telemetry
	shutdown, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	logger.Init(cfg.LogLevel, cfg.Telemetry.Enabled)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	terminator := app.NewShutdownTerminator(cancel)
	application, err := app.New(cfg, terminator)
	if err != nil {
		slog.Error("failed to build application", "error", err)
		return 1
	}

	if err := application.Run(ctx); err != nil {
		slog.Error("application stopped with error", "error", err)
		return 1
	}

	code, _ := terminator.Code()
	slog.Info("Server exiting", "exit.code", code)
	return code
}
