// Package config defines service configuration structures and loading hooks.
package config

import (
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory ingestion queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of ingestion workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the record ID deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxSearchLimit caps GET /panels?limit.
	MaxSearchLimit int `koanf:"max_search_limit"`

	// SeedFile is an optional JSON or YAML panel list loaded at startup.
	SeedFile string `koanf:"seed_file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           ":9080",
		QueueSize:      10_000,
		WorkerCount:    runtime.NumCPU(),
		DedupeSize:     50_000,
		MaxSearchLimit: 500,
	}
}
