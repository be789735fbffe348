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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins проверяет, что ненулевые поля более позднего
// источника перекрывают значения по умолчанию, а нулевые - нет.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "other.db"}},
		Workers: Workers{SyncInterval: time.Minute},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "other.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	// untouched defaults survive
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Workers.RetryBase)
	assert.Equal(t, 6, cfg.Workers.RetryMaxExponent)
}

func TestBuild_InvalidExponent(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{RetryMaxExponent: 64}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LastPathIsUsed(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "from-json.db"}},
	})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/does/not/exist.json"},
		&StructuredConfig{JSONFilePath: path},
	)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json.db", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// ── ClientConfig ──────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(defaultConfig())
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{
			name:   "https address",
			mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "https://sync.example.com" },
		},
		{
			name:    "empty dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "address without scheme",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "localhost:8080" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "bootstrap tokens with address",
			mutate: func(c *ClientConfig) {
				c.Adapter.HTTPAddress = "https://sync.example.com"
				c.Adapter.AccessToken = "access"
			},
		},
		{
			name:    "bootstrap tokens without address",
			mutate:  func(c *ClientConfig) { c.Adapter.AccessToken = "access" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative sync interval",
			mutate:  func(c *ClientConfig) { c.Workers.SyncInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero retry base",
			mutate:  func(c *ClientConfig) { c.Workers.RetryBase = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative log backups",
			mutate:  func(c *ClientConfig) { c.Log.MaxBackups = -1 },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
