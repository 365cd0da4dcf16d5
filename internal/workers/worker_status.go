// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/adapter"
	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// StatusWorker polls GET /api/status on a fixed interval. Every poll result,
// success or failure, is fed into the shared reachability state so the sync
// worker and the scan path never need to probe on their own. The latest
// successful status is kept for the display loop (enroll indicator, last
// scanned card).
type StatusWorker struct {
	gateway  adapter.ServerGateway
	probe    *service.Reachability
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	statusMu sync.RWMutex
	status   models.ServerStatus
	valid    bool
}

// NewStatusWorker creates a StatusWorker polling gateway.Status every
// interval. A zero or negative interval falls back to the default. The
// worker is idle until Start is called.
func NewStatusWorker(gateway adapter.ServerGateway, probe *service.Reachability, interval time.Duration, logger *logger.Logger) *StatusWorker {
	if interval <= 0 {
		interval = config.DefaultStatusInterval
	}
	return &StatusWorker{gateway: gateway, probe: probe, interval: interval, logger: logger}
}

// Start implements [Worker]. It stops any previously running poll loop and
// launches a new one. The goroutine exits when ctx is cancelled or Stop is
// called.
func (w *StatusWorker) Start(ctx context.Context) {
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

		w.pollOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.pollOnce(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the poll loop and blocks until the
// goroutine has fully exited. No-op when the worker is not running.
func (w *StatusWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Latest returns the most recent successful status. The second return value
// is false until the first poll succeeds.
func (w *StatusWorker) Latest() (models.ServerStatus, bool) {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status, w.valid
}

func (w *StatusWorker) pollOnce(ctx context.Context) {
	status, err := w.gateway.Status(ctx)
	w.probe.SetExternalResult(err == nil, time.Now())
	if err != nil {
		w.logger.Debug().Err(err).Msg("status worker: poll failed")
		return
	}

	w.statusMu.Lock()
	w.status = status
	w.valid = true
	w.statusMu.Unlock()
}
