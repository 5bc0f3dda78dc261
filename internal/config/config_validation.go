// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"time"
)

// Default values applied by [StructuredConfig.applyDefaults] for settings
// that no configuration source provided.
const (
	DefaultRequestTimeout = 30 * time.Second

	DefaultPollInterval  = 30 * time.Second
	DefaultWorkerCount   = 4
	DefaultBackoffBase   = 5 * time.Second
	DefaultBackoffFactor = 2.0
	DefaultBackoffCap    = 10 * time.Minute

	DefaultProbeInterval = 15 * time.Second
	DefaultProbeTimeout  = 5 * time.Second

	DefaultServerAddress        = "localhost:8090"
	DefaultServerRequestTimeout = 10 * time.Second

	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
)

// applyDefaults fills every optional setting left zero by all configuration
// sources. Required settings (DSN, blob dir, adapter addresses) have no
// defaults and are enforced by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Workers.PollInterval == 0 {
		cfg.Workers.PollInterval = DefaultPollInterval
	}
	if cfg.Workers.WorkerCount == 0 {
		cfg.Workers.WorkerCount = DefaultWorkerCount
	}
	if cfg.Workers.BackoffBase == 0 {
		cfg.Workers.BackoffBase = DefaultBackoffBase
	}
	if cfg.Workers.BackoffFactor == 0 {
		cfg.Workers.BackoffFactor = DefaultBackoffFactor
	}
	if cfg.Workers.BackoffCap == 0 {
		cfg.Workers.BackoffCap = DefaultBackoffCap
	}

	if cfg.Monitor.ProbeURL == "" {
		cfg.Monitor.ProbeURL = cfg.Adapter.StorageAddress
	}
	if cfg.Monitor.ProbeInterval == 0 {
		cfg.Monitor.ProbeInterval = DefaultProbeInterval
	}
	if cfg.Monitor.ProbeTimeout == 0 {
		cfg.Monitor.ProbeTimeout = DefaultProbeTimeout
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}

	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = DefaultLogMaxBackups
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The local database must live on disk: an in-memory DSN would lose every
// pending queue item on restart.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.BlobDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.StorageAddress == "" || cfg.Adapter.CRMAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.BackoffFactor < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
