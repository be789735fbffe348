// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// notesync client. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the embedded local store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds configuration of the remote sync service transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background sync triggers and retries.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds configuration of the rotating client log file.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ClientID overrides the per-device client id stored in the local
	// database. Normally empty: the id is generated once and persisted.
	// Env: APP_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
}

// Storage groups the configuration of storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "notesync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the outbound transport to the sync service.
type Adapter struct {
	// HTTPAddress is the default sync service base URL used when sync is
	// enabled without an explicit endpoint (e.g. "https://sync.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// A timeout surfaces to the sync engine as a generic failure.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AccessToken and RefreshToken enable sync with HTTPAddress on first
	// start. Once sync is enabled the tokens live in the local database and
	// these values are ignored. Not accepted as flags.
	// Env: ADAPTER_ACCESS_TOKEN, ADAPTER_REFRESH_TOKEN
	AccessToken  string `env:"ACCESS_TOKEN"`
	RefreshToken string `env:"REFRESH_TOKEN"`
}

// Workers holds configuration for background sync triggers.
type Workers struct {
	// SyncInterval enables the optional periodic sync trigger. Zero disables
	// polling; syncs then run on startup, on SIGHUP and on shutdown only.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// RetryBase is the first retry delay after a failed sync.
	// Env: WORKERS_RETRY_BASE
	RetryBase time.Duration `env:"RETRY_BASE"`

	// RetryMaxExponent caps the backoff exponent: the longest delay is
	// RetryBase * 2^RetryMaxExponent.
	// Env: WORKERS_RETRY_MAX_EXPONENT
	RetryMaxExponent int `env:"RETRY_MAX_EXPONENT"`
}

// Log holds the rotating log file settings.
type Log struct {
	// FilePath is the log file location.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
	// MaxSizeMB is the size at which the file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
	// MaxBackups is the number of rotated files to keep.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
	// MaxAgeDays is the number of days to keep rotated files.
	// Env: LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "notesync.db"}},
		Adapter: Adapter{RequestTimeout: 15 * time.Second},
		Workers: Workers{RetryBase: time.Second, RetryMaxExponent: 6},
		Log:     Log{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
