// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the fieldsync
// agent. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the owner identity and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the local
	// SQLite database and the photo blob directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds addresses and credentials for the remote storage and
	// CRM integrations.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings for the background sync engine: poll cadence,
	// concurrency, and the retry backoff schedule.
	Workers Workers `envPrefix:"WORKERS_"`

	// Monitor holds settings for the connectivity probe.
	Monitor Monitor `envPrefix:"MONITOR_"`

	// Server holds network settings for the local diagnostics HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds settings for the rotating log file sink.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// OwnerUserID identifies the field technician that owns all batches
	// created on this device.
	// Env: APP_OWNER_USER_ID
	OwnerUserID string `env:"OWNER_USER_ID"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all local persistence backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for photo blob storage.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite database file path
	// (e.g. "/var/lib/fieldsync/fieldsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the photo blob store.
type Files struct {
	// BlobDir is the absolute or relative path to the directory where
	// captured photo blobs are stored until synced.
	// Env: STORAGE_FILES_BLOB_DIR
	BlobDir string `env:"BLOB_DIR"`
}

// Adapter holds addresses, credentials, and timeouts for the outbound
// integrations.
type Adapter struct {
	// StorageAddress is the base URL of the remote object storage service
	// (e.g. "https://storage.example.com").
	// Env: ADAPTER_STORAGE_ADDRESS
	StorageAddress string `env:"STORAGE_ADDRESS"`

	// CRMAddress is the base URL of the CRM/ERP service
	// (e.g. "https://crm.example.com").
	// Env: ADAPTER_CRM_ADDRESS
	CRMAddress string `env:"CRM_ADDRESS"`

	// APIToken is the bearer token sent with every outbound request.
	// Env: ADAPTER_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the adapter cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds settings for the background sync engine.
type Workers struct {
	// PollInterval defines how often the sync engine scans the work queue
	// for due items when idle.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// WorkerCount bounds how many queue items are processed concurrently.
	// Env: WORKERS_COUNT
	WorkerCount int `env:"COUNT"`

	// BackoffBase is the delay before the first retry of a failed item.
	// Env: WORKERS_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffFactor is the multiplier applied to the delay on each
	// subsequent failure.
	// Env: WORKERS_BACKOFF_FACTOR
	BackoffFactor float64 `env:"BACKOFF_FACTOR"`

	// BackoffCap is the maximum retry delay.
	// Env: WORKERS_BACKOFF_CAP
	BackoffCap time.Duration `env:"BACKOFF_CAP"`
}

// Monitor holds settings for the connectivity probe that tells the sync
// engine whether the device is online.
type Monitor struct {
	// ProbeURL is the endpoint probed to detect connectivity. Defaults to
	// the remote storage address when empty.
	// Env: MONITOR_PROBE_URL
	ProbeURL string `env:"PROBE_URL"`

	// ProbeInterval defines how often the probe runs.
	// Env: MONITOR_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeTimeout bounds a single probe request.
	// Env: MONITOR_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Server holds network settings for the local diagnostics HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the diagnostics server
	// listens, in "host:port" format (e.g. "localhost:8090").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds settings for the rotating log file sink. When FilePath is empty
// the agent logs to stderr only.
type Log struct {
	// FilePath is the path of the log file.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// MaxSizeMB is the size in megabytes at which the log file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated log files kept on disk.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied after merging, so only fields left zero by every
// source fall back to their default values.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
