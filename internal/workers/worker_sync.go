// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
)

// SyncWorker refreshes the authorization bitset from the server on a fixed
// interval. One refresh is attempted immediately on Start so a freshly
// booted device does not wait a full interval for its first snapshot.
type SyncWorker struct {
	syncService service.SyncService
	interval    time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a SyncWorker that calls syncService.SyncFromServer
// every interval. A zero or negative interval falls back to the default.
// The worker is idle until Start is called.
func NewSyncWorker(syncService service.SyncService, interval time.Duration, logger *logger.Logger) *SyncWorker {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}
	return &SyncWorker{syncService: syncService, interval: interval, logger: logger}
}

// Start implements [Worker]. It stops any previously running job, then
// launches the refresh loop. The goroutine exits when ctx is cancelled or
// Stop is called.
func (w *SyncWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.syncOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.syncOnce(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the refresh loop and blocks until
// the goroutine has fully exited. No-op when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *SyncWorker) syncOnce(ctx context.Context) {
	changed, err := w.syncService.SyncFromServer(ctx)
	switch {
	case err == nil:
		if changed {
			w.logger.Info().Msg("sync worker: snapshot updated")
		}
	case errors.Is(err, service.ErrServerDown), errors.Is(err, service.ErrServerNotConfigured):
		// expected while offline, the next tick retries
		w.logger.Debug().Err(err).Msg("sync worker: skipped")
	default:
		w.logger.Warn().Err(err).Msg("sync worker: refresh failed")
	}
}
