package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/user-validation/go-api-server/internal/bootstrap"
	"github.com/user-validation/go-api-server/internal/config"
	"github.com/user-validation/go-api-server/internal/router"
	"github.com/user-validation/go-api-server/internal/shared/logger"
	"github.com/user-validation/go-api-server/internal/shared/validator"
)

func main() {
	env := parseFlags()

	logger.Setup(env)
	slog.Info("Server initializing", "env", env)

	if err := run(env); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()
	return *env
}

func run(env string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	srv, err := setupServer(cfg)
	if err != nil {
		return err
	}

	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer wires validators, middleware and routes into an HTTP server
func setupServer(cfg *config.Config) (*bootstrap.Server, error) {
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	// Binding tags must exist before the first request is bound
	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router.Setup(ginEngine, cfg)

	slog.Info("Server configured", "env", cfg.App.Env)

	return bootstrap.New(cfg, ginEngine), nil
}

func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("Shutting down server", "addr", srv.Addr())
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
		return nil
	}
}
