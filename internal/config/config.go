// Package config collects all runtime configuration from the environment
// once at startup. The values are passed into the components that need
// them at construction, there is no process-wide mutable configuration.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration of the backend.
type Config struct {
	// DBPath is the path of the SQLite database file.
	DBPath string

	// InsightServiceURL is the endpoint of the external insight service.
	// An empty value disables the external source.
	InsightServiceURL string

	// InsightTimeout bounds every call to the insight service.
	InsightTimeout time.Duration

	// DashboardTTL is how long a computed dashboard stays cached.
	DashboardTTL time.Duration

	// AlertsTTL is how long computed alerts stay cached.
	AlertsTTL time.Duration

	// WorkerRetries is the number of attempts for a background job.
	WorkerRetries int

	// WorkerBackoff is the base wait between background job attempts.
	WorkerBackoff time.Duration

	// EnablePprof mounts the pprof routes when set.
	EnablePprof bool
}

// FromEnv reads the configuration from the environment, falling back to
// defaults for everything that is not set.
func FromEnv() Config {
	return Config{
		DBPath:            getString("DB_PATH", "data/gorm.db"),
		InsightServiceURL: os.Getenv("INSIGHT_SERVICE_URL"),
		InsightTimeout:    getDuration("INSIGHT_TIMEOUT", 2*time.Second),
		DashboardTTL:      getDuration("DASHBOARD_CACHE_TTL", 60*time.Second),
		AlertsTTL:         getDuration("ALERTS_CACHE_TTL", 30*time.Second),
		WorkerRetries:     getInt("WORKER_RETRIES", 3),
		WorkerBackoff:     getDuration("WORKER_BACKOFF", 5*time.Second),
		EnablePprof:       os.Getenv("ENABLE_PPROF") == "true",
	}
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func getInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return parsed
}
