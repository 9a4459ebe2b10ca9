package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	httpapi "github.com/hmraza/weatherman/internal/api/http"
	"github.com/hmraza/weatherman/internal/config"
	"github.com/hmraza/weatherman/internal/ingest"
	"github.com/hmraza/weatherman/internal/scheduler"
	"github.com/hmraza/weatherman/internal/store"
	"github.com/hmraza/weatherman/internal/weather"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the weatherman HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	users := store.NewUserStore()
	svc := weather.NewService(cfg.FilesDir)

	// Optional remote file sync.
	if cfg.SyncBaseURL != "" {
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		fetcher := ingest.NewFetcher(httpClient, cfg.SyncBaseURL, cfg.FilesDir, cfg.MaxRetries)

		sched := scheduler.New(cfg.SyncLocations, cfg.SyncInterval, fetcher)
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weatherman",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weatherman",
		})
	})

	authCfg := httpapi.AuthConfig{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL}
	httpapi.RegisterAuthRoutes(app, users, authCfg)
	httpapi.RegisterRoutes(app, svc, httpapi.RequireAuth(authCfg))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	return nil
}
