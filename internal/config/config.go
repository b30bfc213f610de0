package config

import (
	"os"
	"strconv"
	"time"
)

// Dataset sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Dataset
	DatasetSource         string        // env: DATASET_SOURCE, "file" or "postgres"
	DatasetFile           string        // env: DATASET_FILE, .csv or .xlsx
	DatasetSheet          string        // env: DATASET_SHEET, worksheet for .xlsx files
	DatasetWatch          bool          // env: DATASET_WATCH, reload the file when it changes
	DatasetReloadInterval time.Duration // env: DATASET_RELOAD_INTERVAL, postgres polling, 0 disables

	// Database (only used when DatasetSource is "postgres")
	DatabaseURL string

	// Rate limiting
	RateLimitMax int    // env: RATE_LIMIT_MAX, requests per minute per IP
	RedisURL     string // env: REDIS_URL, shared limiter storage; empty keeps it in memory

	// Metrics
	MetricsEnabled bool

	// YAML dashboard config
	ConfigFile string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "SpaceX Launch Records Dashboard"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":8050"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8050"),
		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		DatasetSource:         getEnv("DATASET_SOURCE", SourceFile),
		DatasetFile:           getEnv("DATASET_FILE", "spacex_launch_dash.csv"),
		DatasetSheet:          getEnv("DATASET_SHEET", ""),
		DatasetWatch:          getEnv("DATASET_WATCH", "") != "",
		DatasetReloadInterval: getEnvDuration("DATASET_RELOAD_INTERVAL", 0),

		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/launchdash?sslmode=disable"),

		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 300),
		RedisURL:     getEnv("REDIS_URL", ""),

		MetricsEnabled: getEnv("METRICS_ENABLED", "true") != "false",

		ConfigFile: getEnv("CONFIG_FILE", "config.yaml"),

		SiteTitle:   getEnv("SITE_TITLE", "SpaceX Launch Records Dashboard"),
		SiteTagline: getEnv("SITE_TAGLINE", "Launch outcomes by site and payload mass"),
		SiteFooter:  getEnv("SITE_FOOTER", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// UsesPostgres returns true if launch records are read from the database.
func (c *Config) UsesPostgres() bool {
	return c.DatasetSource == SourcePostgres
}
