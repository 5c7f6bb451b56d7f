package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingDatabaseURL is returned by Load when no connection string is configured.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL (or MONGODB_URI) must be set")

// DefaultDBName is the database used by the document store when DB_NAME is unset.
const DefaultDBName = "invitation_db"

// Config holds all configuration for the application
type Config struct {
	DBUrl              string
	DBName             string
	Environment        string
	Port               string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env usually does not exist and the system environment is used.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		DBUrl:       os.Getenv("DATABASE_URL"),
		DBName:      os.Getenv("DB_NAME"),
		Port:        os.Getenv("PORT"),
	}

	if cfg.DBUrl == "" {
		cfg.DBUrl = os.Getenv("MONGODB_URI")
	}
	if cfg.DBUrl == "" {
		return nil, ErrMissingDatabaseURL
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBName == "" {
		cfg.DBName = DefaultDBName
	}

	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.ShutdownTimeout = 10 * time.Second
	if s := os.Getenv("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
