// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetDeviceConfig] when a field was not supplied by
// any configuration source. The intervals follow the original device
// firmware; the capacity cap follows the bitset package.
const (
	DefaultRequestTimeout = 5 * time.Second
	DefaultProbeTimeout   = 1500 * time.Millisecond
	DefaultSyncInterval   = 60 * time.Second
	DefaultStatusInterval = 2 * time.Second
	DefaultMaxCards       = 200_000
)

// DeviceApp holds device-side application settings derived from the shared
// structured config.
type DeviceApp struct {
	// Version is the firmware/application version string.
	Version string
	// MaxCards caps the bitset cardinality; the fixed arena is sized
	// from it once at startup.
	MaxCards uint64
}

// DeviceAdapter holds network settings used by the device transport layer.
type DeviceAdapter struct {
	// ServerBaseURL is the registry server base URL.
	ServerBaseURL string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// ProbeTimeout bounds the short liveness probe.
	ProbeTimeout time.Duration
}

// DeviceStorage groups device storage backend settings.
type DeviceStorage struct {
	// DB holds the local SQLite scalar store settings.
	DB DeviceDB
	// Files holds the snapshot file store settings.
	Files Files
}

// DeviceWorkers contains device background worker settings.
type DeviceWorkers struct {
	// SyncInterval defines how often the bitset refresh runs.
	SyncInterval time.Duration
	// StatusInterval defines how often the status poll runs.
	StatusInterval time.Duration
}

// DeviceConfig is the top-level device configuration assembled from
// [StructuredConfig].
type DeviceConfig struct {
	// App contains application-level device settings.
	App DeviceApp
	// Adapter contains the registry transport settings.
	Adapter DeviceAdapter
	// Storage contains device storage settings.
	Storage DeviceStorage
	// Workers contains background job settings.
	Workers DeviceWorkers
}

// GetDeviceConfig builds and validates a device-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the device runtime, applies defaults, and validates the
// resulting [DeviceConfig].
func GetDeviceConfig() (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	deviceCfg := &DeviceConfig{
		App: DeviceApp{
			Version:  cfg.App.Version,
			MaxCards: cfg.App.MaxCards,
		},
		Adapter: DeviceAdapter{
			ServerBaseURL:  cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ProbeTimeout:   cfg.Adapter.ProbeTimeout,
		},
		Storage: DeviceStorage{
			DB:    cfg.Storage.DeviceDB,
			Files: cfg.Storage.Files,
		},
		Workers: DeviceWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			StatusInterval: cfg.Workers.StatusInterval,
		},
	}
	deviceCfg.applyDefaults()

	return deviceCfg, deviceCfg.validate()
}

func (cfg *DeviceConfig) applyDefaults() {
	if cfg.App.MaxCards == 0 {
		cfg.App.MaxCards = DefaultMaxCards
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.ProbeTimeout <= 0 {
		cfg.Adapter.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.StatusInterval <= 0 {
		cfg.Workers.StatusInterval = DefaultStatusInterval
	}
}
