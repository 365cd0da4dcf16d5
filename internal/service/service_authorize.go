// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/internal/adapter"
	"github.com/MKhiriev/go-gate-keeper/internal/bitset"
	"github.com/MKhiriev/go-gate-keeper/internal/hashcache"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/internal/uid"
)

// authorizeService is the default implementation of [AuthorizeService]: the
// decision function consulted on every scan.
//
// Decision tiers, each short-circuiting:
//  1. fingerprint in the deny set → denied
//  2. fingerprint in the allow set → authorized
//  3. server configured and not inside the down-backoff window → live
//     per-card lookup; the answer is learned into the hash cache,
//     persisted, and returned
//  4. otherwise → denied (fail closed)
//
// Deny wins over allow so a stale allow entry can never outlive a revoked
// credential; the live lookup is preferred over the coarse bitset because it
// is more precise and self-correcting for unknown cards.
type authorizeService struct {
	gateway adapter.ServerGateway
	probe   *Reachability
	bits    *bitset.Bitset
	cache   *hashcache.Cache
	blobs   store.BlobStore
	logger  *logger.Logger
}

// NewAuthorizeService constructs an [AuthorizeService] sharing the bitset
// and hash cache with the sync service. gateway may be nil for offline-only
// deployments; tier 3 is then never attempted.
func NewAuthorizeService(
	gateway adapter.ServerGateway,
	probe *Reachability,
	bits *bitset.Bitset,
	cache *hashcache.Cache,
	storages *store.DeviceStorages,
	logger *logger.Logger,
) AuthorizeService {
	logger.Debug().Msg("creating authorize service")
	return &authorizeService{
		gateway: gateway,
		probe:   probe,
		bits:    bits,
		cache:   cache,
		blobs:   storages.Blobs,
		logger:  logger,
	}
}

// IsAuthorized implements [AuthorizeService]. It never fails: every error
// on the way collapses to a deny.
func (a *authorizeService) IsAuthorized(ctx context.Context, rawUID string) bool {
	fp := uid.Fingerprint(rawUID)

	if a.cache.Contains(fp, hashcache.Deny) {
		a.logger.Debug().Str("uid", uid.Normalize(rawUID)).Msg("denied by cache")
		return false
	}
	if a.cache.Contains(fp, hashcache.Allow) {
		a.logger.Debug().Str("uid", uid.Normalize(rawUID)).Msg("allowed by cache")
		return true
	}

	if a.gateway != nil && !a.probe.ShouldSkip() {
		lookup, err := a.gateway.LookupCard(ctx, uid.Normalize(rawUID))
		if err == nil {
			authorized := lookup.Exists && lookup.Authorized
			a.cache.Learn(fp, authorized)
			a.persistHashSets(ctx)
			a.logger.Info().
				Str("uid", uid.Normalize(rawUID)).
				Bool("authorized", authorized).
				Msg("learned live lookup result")
			return authorized
		}
		a.logger.Warn().Err(err).Msg("live card lookup failed")
	}

	// unknown and offline: fail closed
	return false
}

// Diagnostics implements [AuthorizeService].
func (a *authorizeService) Diagnostics() Diagnostics {
	allowLen, denyLen := a.cache.Len()
	return Diagnostics{
		CardCount:           a.bits.CardCount(),
		BitsetBytes:         a.bits.SizeBytes(),
		AllowedFingerprints: allowLen,
		DeniedFingerprints:  denyLen,
	}
}

func (a *authorizeService) persistHashSets(ctx context.Context) {
	allow, deny := a.cache.Snapshot()
	if err := a.blobs.Save(ctx, store.HashSetsSnapshotName, store.EncodeHashSets(allow, deny)); err != nil {
		a.logger.Warn().Err(err).Msg("failed to persist hash sets snapshot")
	}
}
