package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the serve command needs.
type AppConfig struct {
	// FilesDir is the directory holding the monthly weather files.
	FilesDir string

	// HTTP server.
	Port string

	// JWT settings for the auth routes.
	JWTSecret string
	JWTTTL    time.Duration

	// Remote file sync. Disabled when SyncBaseURL is empty.
	SyncBaseURL   string
	SyncLocations []string
	SyncInterval  time.Duration

	// Outbound HTTP behaviour for the sync fetcher.
	HTTPTimeout time.Duration
	MaxRetries  int
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.FilesDir = getenvDefault("WEATHER_FILES_PATH", "weatherfiles")
	cfg.Port = getenvDefault("PORT", "8080")

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttlStr := getenvDefault("JWT_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	cfg.SyncBaseURL = os.Getenv("SYNC_BASE_URL")
	if locs := os.Getenv("SYNC_LOCATIONS"); locs != "" {
		for _, loc := range strings.Split(locs, ",") {
			if loc = strings.TrimSpace(loc); loc != "" {
				cfg.SyncLocations = append(cfg.SyncLocations, loc)
			}
		}
	}

	intervalStr := getenvDefault("SYNC_INTERVAL", "24h")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_INTERVAL: %w", err)
	}
	cfg.SyncInterval = interval

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.MaxRetries = getenvInt("SYNC_MAX_RETRIES", 3)

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
