// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/adapter"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// Rate limits of the shared liveness probe. A dead server is retried no
// sooner than the backoff window; a live one is re-verified no more often
// than the probe interval.
const (
	DefaultProbeInterval = 5 * time.Second
	DefaultBackoffWindow = 10 * time.Second
)

// ProbeResult is the answer of [Reachability.ProbeIfDue].
type ProbeResult int

const (
	// ProbeNotDue means the rate limiter suppressed I/O and the cached
	// state still stands.
	ProbeNotDue ProbeResult = iota
	ProbeOK
	ProbeDown
)

// Reachability is the cached, rate-limited server-liveness state shared by
// every server-touching path (sync, live card lookup). It keeps a dead
// server from being hammered while never letting the scan path block on
// liveness I/O: callers consult ShouldSkip first and only probe when the
// state is unknown.
//
// The zero lastProbe time is a sentinel meaning "never probed"; the very
// first check is exempt from backoff.
type Reachability struct {
	gateway      adapter.ServerGateway
	probeTimeout time.Duration
	logger       *logger.Logger

	// now is the clock; injectable for tests.
	now func() time.Time

	mu          sync.Mutex
	lastKnownOK bool
	lastProbe   time.Time
}

// NewReachability constructs a probe around the given gateway. gateway may
// be nil when the device runs offline-only; every probe then reports down.
func NewReachability(gateway adapter.ServerGateway, probeTimeout time.Duration, logger *logger.Logger) *Reachability {
	if probeTimeout <= 0 {
		probeTimeout = 1500 * time.Millisecond
	}
	return &Reachability{
		gateway:      gateway,
		probeTimeout: probeTimeout,
		logger:       logger,
		now:          time.Now,
	}
}

// ShouldSkip reports whether a server-touching operation should be skipped
// outright: true only when the last known state is down, a probe has
// actually happened, and less than the backoff window has elapsed since.
// The sentinel zero timestamp never triggers a skip.
func (r *Reachability) ShouldSkip() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastKnownOK || r.lastProbe.IsZero() {
		return false
	}
	return r.now().Sub(r.lastProbe) < DefaultBackoffWindow
}

// Probed reports whether any probe result (internal or external) has been
// recorded yet.
func (r *Reachability) Probed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.lastProbe.IsZero()
}

// Online returns the cached liveness verdict without performing I/O.
func (r *Reachability) Online() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastKnownOK
}

// ProbeIfDue performs a short-timeout liveness request, but only when no
// probe has happened yet or more than the probe interval has elapsed since
// the last one. Otherwise it returns [ProbeNotDue] and the cached state
// stands.
func (r *Reachability) ProbeIfDue(ctx context.Context) ProbeResult {
	r.mu.Lock()
	if !r.lastProbe.IsZero() && r.now().Sub(r.lastProbe) < DefaultProbeInterval {
		r.mu.Unlock()
		return ProbeNotDue
	}
	r.mu.Unlock()

	ok := r.probe(ctx)
	r.SetExternalResult(ok, r.now())
	if ok {
		return ProbeOK
	}
	return ProbeDown
}

// SetExternalResult records a liveness verdict obtained elsewhere (the
// status-poll worker reaches the same endpoint every couple of seconds), so
// multiple consumers never issue duplicate liveness checks.
func (r *Reachability) SetExternalResult(ok bool, when time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastKnownOK != ok {
		r.logger.Info().Bool("online", ok).Msg("server reachability changed")
	}
	r.lastKnownOK = ok
	r.lastProbe = when
}

func (r *Reachability) probe(ctx context.Context) bool {
	if r.gateway == nil {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	_, err := r.gateway.Status(probeCtx)
	return err == nil
}
