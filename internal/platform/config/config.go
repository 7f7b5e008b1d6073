package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	StorageBackend string
	SQLitePath     string
	DatabaseURL    string
	SeedDemoData   bool

	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// OwnerUserID scopes every record; there is a single local owner.
	OwnerUserID string

	QueryCacheTTL      time.Duration
	RateLimit          string // ulule/limiter formatted rate, e.g. "300-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("STORAGE_BACKEND", BackendSQLite)
	v.SetDefault("SQLITE_PATH", "data/finance.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SEED_DEMO_DATA", false)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OWNER_USER_ID", "demo-user")
	v.SetDefault("QUERY_CACHE_TTL", "1m")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Environment variables override .env values, which override defaults.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND")))
	switch cfg.StorageBackend {
	case BackendSQLite, BackendPostgres, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be one of sqlite, postgres, memory", cfg.StorageBackend)
	}

	cfg.SQLitePath = v.GetString("SQLITE_PATH")
	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.StorageBackend == BackendPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_BACKEND is postgres")
	}
	if cfg.StorageBackend == BackendSQLite && cfg.SQLitePath == "" {
		return nil, fmt.Errorf("SQLITE_PATH must be set when STORAGE_BACKEND is sqlite")
	}
	cfg.SeedDemoData = v.GetBool("SEED_DEMO_DATA")

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	logLevel := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", logLevel)
	}

	cfg.OwnerUserID = strings.TrimSpace(v.GetString("OWNER_USER_ID"))
	if cfg.OwnerUserID == "" {
		cfg.OwnerUserID = "demo-user"
		log.Println("Warning: OWNER_USER_ID is empty. Defaulting to demo-user.")
	}

	cacheTTLStr := v.GetString("QUERY_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil || cacheTTL < 0 {
		cacheTTL = time.Minute
		log.Printf("Warning: Invalid value for QUERY_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}
	cfg.QueryCacheTTL = cacheTTL

	cfg.RateLimit = v.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}
