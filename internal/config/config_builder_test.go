package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a StructuredConfig carrying every required field, so
// that build() passes validation.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:    DB{DSN: "/tmp/fieldsync.db"},
			Files: Files{BlobDir: "/tmp/blobs"},
		},
		Adapter: Adapter{
			StorageAddress: "https://storage.example.com",
			CRMAddress:     "https://crm.example.com",
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation, since the required storage settings are absent.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with the earlier source winning for
// fields set in both.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	first := validConfig()
	first.App.Version = "1.0.0"

	second := &StructuredConfig{
		App: App{Version: "2.0.0", OwnerUserID: "tech-17"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "tech-17", cfg.App.OwnerUserID)
}

// TestBuild_AppliesDefaults verifies that optional settings left zero by all
// sources fall back to their defaults after merging.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Workers.PollInterval)
	assert.Equal(t, DefaultWorkerCount, cfg.Workers.WorkerCount)
	assert.Equal(t, DefaultBackoffBase, cfg.Workers.BackoffBase)
	assert.Equal(t, DefaultBackoffFactor, cfg.Workers.BackoffFactor)
	assert.Equal(t, DefaultBackoffCap, cfg.Workers.BackoffCap)
	assert.Equal(t, DefaultProbeInterval, cfg.Monitor.ProbeInterval)
	assert.Equal(t, DefaultProbeTimeout, cfg.Monitor.ProbeTimeout)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultLogMaxSizeMB, cfg.Log.MaxSizeMB)
	assert.Equal(t, DefaultLogMaxBackups, cfg.Log.MaxBackups)

	// Probe URL falls back to the storage address.
	assert.Equal(t, cfg.Adapter.StorageAddress, cfg.Monitor.ProbeURL)
}

// TestBuild_DefaultsDoNotOverride verifies that explicit values survive the
// defaults pass.
func TestBuild_DefaultsDoNotOverride(t *testing.T) {
	explicit := validConfig()
	explicit.Workers.WorkerCount = 2
	explicit.Workers.BackoffBase = time.Second
	explicit.Monitor.ProbeURL = "https://probe.example.com"

	b := newConfigBuilder()
	b.configs = append(b.configs, explicit)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers.WorkerCount)
	assert.Equal(t, time.Second, cfg.Workers.BackoffBase)
	assert.Equal(t, "https://probe.example.com", cfg.Monitor.ProbeURL)
}

// TestBuild_RejectsInMemoryDSN verifies that an in-memory SQLite DSN fails
// validation: the queue must survive restarts.
func TestBuild_RejectsInMemoryDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = "file::memory:?cache=shared"

	b := newConfigBuilder()
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_RejectsMissingAdapterAddresses verifies that missing adapter
// addresses fail validation.
func TestBuild_RejectsMissingAdapterAddresses(t *testing.T) {
	cfg := validConfig()
	cfg.Adapter.CRMAddress = ""

	b := newConfigBuilder()
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// TestBuild_RejectsBackoffFactorBelowOne verifies that a backoff factor
// below one fails validation: retries must not get denser over time.
func TestBuild_RejectsBackoffFactorBelowOne(t *testing.T) {
	cfg := validConfig()
	cfg.Workers.BackoffFactor = 0.5

	b := newConfigBuilder()
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_OWNER_USER_ID", "env-owner")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-owner", b.configs[0].App.OwnerUserID)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.OwnerUserID = "json-owner"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-owner", b.configs[1].App.OwnerUserID)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}
