// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// mergo keeps the first non-zero value, so sources appended earlier win
	first := &StructuredConfig{Adapter: Adapter{HTTPAddress: "http://from-env:5000"}}
	second := &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://from-flags:5000", RequestTimeout: 5 * time.Second},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout, "fields absent in the first source fall through")
}

func TestDeviceConfig_ApplyDefaults(t *testing.T) {
	cfg := &DeviceConfig{
		Storage: DeviceStorage{
			DB:    DeviceDB{DSN: "/data/gate.db"},
			Files: Files{DataDir: "/data"},
		},
	}
	cfg.applyDefaults()

	assert.EqualValues(t, DefaultMaxCards, cfg.App.MaxCards)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultProbeTimeout, cfg.Adapter.ProbeTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultStatusInterval, cfg.Workers.StatusInterval)
	require.NoError(t, cfg.validate())
}

func TestDeviceConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DeviceConfig)
		wantErr error
	}{
		{
			name:    "missing device db",
			mutate:  func(c *DeviceConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing data dir",
			mutate:  func(c *DeviceConfig) { c.Storage.Files.DataDir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero capacity cap",
			mutate:  func(c *DeviceConfig) { c.App.MaxCards = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty server url is allowed (offline deployment)",
			mutate:  func(c *DeviceConfig) { c.Adapter.ServerBaseURL = "" },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DeviceConfig{
				Adapter: DeviceAdapter{ServerBaseURL: "http://localhost:5000"},
				Storage: DeviceStorage{
					DB:    DeviceDB{DSN: "/data/gate.db"},
					Files: Files{DataDir: "/data"},
				},
			}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := &ServerConfig{
		Server:  Server{HTTPAddress: "0.0.0.0:5000"},
		Storage: ServerStorage{DB: DB{DSN: "postgres://localhost/cards"}},
	}
	assert.NoError(t, valid.validate())

	noAddr := *valid
	noAddr.Server.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidServerConfigs)

	noDSN := *valid
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)
}
