// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/bitset"
	"github.com/MKhiriev/go-gate-keeper/internal/hashcache"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/mock"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/internal/uid"
	"github.com/MKhiriev/go-gate-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type authorizeFixture struct {
	gateway *mock.MockServerGateway
	blobs   *mock.MockBlobStore
	probe   *Reachability
	bits    *bitset.Bitset
	cache   *hashcache.Cache
	auth    AuthorizeService
}

func newAuthorizeFixture(t *testing.T) *authorizeFixture {
	ctrl := gomock.NewController(t)

	f := &authorizeFixture{
		gateway: mock.NewMockServerGateway(ctrl),
		blobs:   mock.NewMockBlobStore(ctrl),
		bits:    bitset.New(64),
		cache:   hashcache.New(),
	}
	f.probe = NewReachability(f.gateway, time.Second, logger.Nop())
	f.probe.SetExternalResult(true, time.Now())

	storages := &store.DeviceStorages{Blobs: f.blobs}
	f.auth = NewAuthorizeService(f.gateway, f.probe, f.bits, f.cache, storages, logger.Nop())
	return f
}

func TestIsAuthorized_DenyCacheWins(t *testing.T) {
	f := newAuthorizeFixture(t)

	fp := uid.Fingerprint("DEADBEEF")
	f.cache.ReplaceAll([]uint64{fp}, []uint64{fp})

	// disjointness drops the fingerprint from allow, deny answers first
	assert.False(t, f.auth.IsAuthorized(context.Background(), "DEADBEEF"))
}

func TestIsAuthorized_AllowCacheHit(t *testing.T) {
	f := newAuthorizeFixture(t)

	f.cache.Learn(uid.Fingerprint("04A1B2C3"), true)

	// no gateway expectation: the cached verdict must not trigger a lookup
	assert.True(t, f.auth.IsAuthorized(context.Background(), "04A1B2C3"))
}

func TestIsAuthorized_NormalizesBeforeCacheLookup(t *testing.T) {
	f := newAuthorizeFixture(t)

	f.cache.Learn(uid.Fingerprint("04A1B2C3"), true)

	// lowercase with surrounding whitespace hits the same fingerprint
	assert.True(t, f.auth.IsAuthorized(context.Background(), "  04a1b2c3 "))
}

func TestIsAuthorized_LiveLookupLearnsAllow(t *testing.T) {
	f := newAuthorizeFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().LookupCard(ctx, "04A1B2C3").
		Return(models.CardLookup{Exists: true, Authorized: true, CardID: 7}, nil)
	f.blobs.EXPECT().Save(ctx, store.HashSetsSnapshotName, gomock.Any()).Return(nil)

	assert.True(t, f.auth.IsAuthorized(ctx, "04a1b2c3"))

	// second scan answers from the cache without another lookup
	assert.True(t, f.auth.IsAuthorized(ctx, "04A1B2C3"))
}

func TestIsAuthorized_LiveLookupLearnsDenyForUnknownCard(t *testing.T) {
	f := newAuthorizeFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().LookupCard(ctx, "FEEDFACE").
		Return(models.CardLookup{Exists: false}, nil)
	f.blobs.EXPECT().Save(ctx, store.HashSetsSnapshotName, gomock.Any()).Return(nil)

	assert.False(t, f.auth.IsAuthorized(ctx, "FEEDFACE"))
	assert.True(t, f.cache.Contains(uid.Fingerprint("FEEDFACE"), hashcache.Deny))
}

func TestIsAuthorized_RevokedCardLearnsDeny(t *testing.T) {
	f := newAuthorizeFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().LookupCard(ctx, "DEADBEEF").
		Return(models.CardLookup{Exists: true, Authorized: false, CardID: 3}, nil)
	f.blobs.EXPECT().Save(ctx, store.HashSetsSnapshotName, gomock.Any()).Return(nil)

	assert.False(t, f.auth.IsAuthorized(ctx, "DEADBEEF"))
}

func TestIsAuthorized_LookupErrorFailsClosed(t *testing.T) {
	f := newAuthorizeFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().LookupCard(ctx, "04A1B2C3").
		Return(models.CardLookup{}, errors.New("connection reset"))

	assert.False(t, f.auth.IsAuthorized(ctx, "04A1B2C3"))

	// errors are not learned: the next scan tries the server again
	assert.False(t, f.cache.Contains(uid.Fingerprint("04A1B2C3"), hashcache.Deny))
}

func TestIsAuthorized_BackoffSkipsLookupAndFailsClosed(t *testing.T) {
	f := newAuthorizeFixture(t)

	// the server just went down; no LookupCard expectation is set
	f.probe.SetExternalResult(false, time.Now())

	assert.False(t, f.auth.IsAuthorized(context.Background(), "04A1B2C3"))
}

func TestIsAuthorized_NilGatewayFailsClosed(t *testing.T) {
	probe := NewReachability(nil, time.Second, logger.Nop())
	auth := NewAuthorizeService(nil, probe, bitset.New(64), hashcache.New(), &store.DeviceStorages{}, logger.Nop())

	assert.False(t, auth.IsAuthorized(context.Background(), "04A1B2C3"))
}

func TestDiagnostics(t *testing.T) {
	f := newAuthorizeFixture(t)

	f.bits.Reset(15)
	f.cache.ReplaceAll([]uint64{1, 2, 3}, []uint64{9})

	d := f.auth.Diagnostics()
	assert.EqualValues(t, 16, d.CardCount)
	assert.EqualValues(t, 2, d.BitsetBytes)
	assert.Equal(t, 3, d.AllowedFingerprints)
	assert.Equal(t, 1, d.DeniedFingerprints)
}
