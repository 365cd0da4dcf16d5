// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-gate-keeper/internal/adapter"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/uid"
	"github.com/MKhiriev/go-gate-keeper/internal/workers"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// App is the device main loop: background workers plus the blocking
// read-scan-decide-render cycle.
type App struct {
	services *service.DeviceServices
	gateway  adapter.ServerGateway
	workers  *workers.Workers
	status   *workers.StatusWorker
	reader   CardReader
	display  *Display
	logger   *logger.Logger
}

// NewApp assembles the device application. gateway and status may be nil
// for offline-only deployments; scans are then decided purely from local
// state.
func NewApp(
	services *service.DeviceServices,
	gateway adapter.ServerGateway,
	jobs *workers.Workers,
	status *workers.StatusWorker,
	reader CardReader,
	display *Display,
	logger *logger.Logger,
) *App {
	logger.Info().Msg("device app created")
	return &App{
		services: services,
		gateway:  gateway,
		workers:  jobs,
		status:   status,
		reader:   reader,
		display:  display,
		logger:   logger,
	}
}

// Run starts the background workers and processes scans until ctx is
// cancelled or the reader stream ends.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.display.Ready(a.services.Authorize.Diagnostics())

	for {
		rawUID, err := a.reader.ReadUID(ctx)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			return err
		}

		if uid.Normalize(rawUID) == "" {
			continue
		}
		a.handleScan(ctx, rawUID)
	}
}

// handleScan reports the scan to the registry (best effort), decides access
// locally, and renders the verdict.
func (a *App) handleScan(ctx context.Context, rawUID string) {
	normalized := uid.Normalize(rawUID)

	if a.gateway != nil && !a.services.Reachability.ShouldSkip() {
		result, err := a.gateway.ReportScan(ctx, normalized)
		if err != nil {
			a.logger.Warn().Err(err).Str("uid", normalized).Msg("scan report failed")
		} else if result.Enrolled {
			a.display.Enrolled(normalized)
		}
	}

	authorized := a.services.Authorize.IsAuthorized(ctx, rawUID)
	a.logger.Info().Str("uid", normalized).Bool("authorized", authorized).Msg("scan decided")

	var status models.ServerStatus
	if a.status != nil {
		status, _ = a.status.Latest()
	}
	a.display.Verdict(normalized, authorized, a.services.Reachability.Online(), status)
}
