// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/mock"
	"github.com/MKhiriev/go-gate-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// fakeClock lets tests advance time manually.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func newFakeClock() *fakeClock               { return &fakeClock{t: time.Unix(1_700_000_000, 0)} }

func newTestReachability(gateway *mock.MockServerGateway) (*Reachability, *fakeClock) {
	clock := newFakeClock()
	var r *Reachability
	if gateway != nil {
		r = NewReachability(gateway, time.Second, logger.Nop())
	} else {
		r = NewReachability(nil, time.Second, logger.Nop())
	}
	r.now = clock.now
	return r, clock
}

func TestShouldSkip_NeverProbed(t *testing.T) {
	r, _ := newTestReachability(nil)

	assert.False(t, r.ShouldSkip(), "the sentinel zero timestamp exempts the first check from backoff")
}

func TestShouldSkip_DownInsideBackoffWindow(t *testing.T) {
	r, clock := newTestReachability(nil)

	r.SetExternalResult(false, clock.now())
	assert.True(t, r.ShouldSkip())

	clock.advance(DefaultBackoffWindow - time.Second)
	assert.True(t, r.ShouldSkip(), "still inside the backoff window")

	clock.advance(2 * time.Second)
	assert.False(t, r.ShouldSkip(), "backoff window elapsed, retry allowed")
}

func TestShouldSkip_NeverWhileOnline(t *testing.T) {
	r, clock := newTestReachability(nil)

	r.SetExternalResult(true, clock.now())
	assert.False(t, r.ShouldSkip())
}

func TestProbeIfDue_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockServerGateway(ctrl)
	r, clock := newTestReachability(gateway)

	// a recent result suppresses I/O entirely: no Status expectation is set
	r.SetExternalResult(true, clock.now())
	clock.advance(DefaultProbeInterval - time.Second)

	assert.Equal(t, ProbeNotDue, r.ProbeIfDue(context.Background()))
	assert.True(t, r.Online())
}

func TestProbeIfDue_FirstProbeDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockServerGateway(ctrl)
	r, _ := newTestReachability(gateway)

	gateway.EXPECT().Status(gomock.Any()).Return(models.ServerStatus{}, errors.New("connection refused"))

	assert.Equal(t, ProbeDown, r.ProbeIfDue(context.Background()))
	assert.False(t, r.Online())
	assert.True(t, r.Probed())
}

func TestProbeIfDue_RecoversAfterInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockServerGateway(ctrl)
	r, clock := newTestReachability(gateway)

	gateway.EXPECT().Status(gomock.Any()).Return(models.ServerStatus{}, errors.New("down"))
	assert.Equal(t, ProbeDown, r.ProbeIfDue(context.Background()))

	clock.advance(DefaultProbeInterval + time.Second)
	gateway.EXPECT().Status(gomock.Any()).Return(models.ServerStatus{}, nil)
	assert.Equal(t, ProbeOK, r.ProbeIfDue(context.Background()))
	assert.True(t, r.Online())
}

func TestProbe_NilGatewayIsAlwaysDown(t *testing.T) {
	r, _ := newTestReachability(nil)

	assert.Equal(t, ProbeDown, r.ProbeIfDue(context.Background()))
	assert.False(t, r.Online())
}
