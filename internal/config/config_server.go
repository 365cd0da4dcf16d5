// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	// DB holds the card registry database settings.
	DB DB
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains application-level settings.
	App App
	// Server contains listen address and timeout settings.
	Server Server
	// Storage contains registry database settings.
	Storage ServerStorage
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Storage: ServerStorage{
			DB: cfg.Storage.DB,
		},
	}
	if serverCfg.Server.RequestTimeout <= 0 {
		serverCfg.Server.RequestTimeout = 30 * time.Second
	}

	return serverCfg, serverCfg.validate()
}
