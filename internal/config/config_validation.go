// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The shared config is permissive on purpose: each binary validates its own
// view ([DeviceConfig.validate], [ServerConfig.validate]) so that, for
// example, a device deployment does not need a registry database DSN.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *DeviceConfig) validate() error {
	// An empty server URL is allowed: the device then runs purely on its
	// persisted offline state and every sync attempt reports failure.
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Files.DataDir == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.App.MaxCards == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
