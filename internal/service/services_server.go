// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

// ServerServices groups the registry server's services.
type ServerServices struct {
	Registry RegistryService
}

// NewServerServices builds the server service graph on top of the storage
// layer.
func NewServerServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *ServerServices {
	logger.Info().Msg("creating server services...")
	return &ServerServices{
		Registry: NewRegistryService(storages.CardRepository, cfg.Server, logger),
	}
}
