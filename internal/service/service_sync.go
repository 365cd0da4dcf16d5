// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"sync"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/adapter"
	"github.com/MKhiriev/go-gate-keeper/internal/bitset"
	"github.com/MKhiriev/go-gate-keeper/internal/hashcache"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/internal/uid"
)

// syncService is the default implementation of [SyncService]. It owns the
// sync metadata (ETag, last sync time) and performs the wholesale bitset
// replacement; the bitset and hash cache themselves are shared with the
// authorize service.
//
// Syncs are strictly sequential: a mutex serialises SyncFromServer so no two
// server snapshots interleave.
type syncService struct {
	gateway adapter.ServerGateway
	probe   *Reachability
	bits    *bitset.Bitset
	cache   *hashcache.Cache
	scalars store.ScalarStore
	blobs   store.BlobStore
	logger  *logger.Logger

	now func() time.Time

	mu       sync.Mutex
	etag     string
	lastSync time.Time
}

// NewSyncService constructs a [SyncService] sharing the given bitset and
// hash cache with the decision path. etag is the validator restored from the
// scalar store at boot ("" when none was persisted).
func NewSyncService(
	gateway adapter.ServerGateway,
	probe *Reachability,
	bits *bitset.Bitset,
	cache *hashcache.Cache,
	storages *store.DeviceStorages,
	etag string,
	logger *logger.Logger,
) SyncService {
	logger.Debug().Msg("creating sync service")
	return &syncService{
		gateway: gateway,
		probe:   probe,
		bits:    bits,
		cache:   cache,
		scalars: storages.Scalars,
		blobs:   storages.Blobs,
		logger:  logger,
		now:     time.Now,
		etag:    etag,
	}
}

// SyncFromServer implements [SyncService].
//
// Preconditions short-circuit in order: a configured server, a reachability
// state that is not inside the down-backoff window, and (when the server has
// never been probed) one inline probe. Any precondition failure returns an
// error without touching authorization state.
//
// A fresh snapshot is applied wholesale: capacity is validated first, the
// active byte range is zeroed, the hex bit string is decoded fail-soft, and
// only then are the new max card id, ETag, and snapshots persisted. A
// snapshot that exceeds the fixed arena rejects the entire sync and
// collapses the local cardinality to empty, never leaving stale bits behind.
func (s *syncService) SyncFromServer(ctx context.Context) (bool, error) {
	if s.gateway == nil {
		return false, ErrServerNotConfigured
	}
	if s.probe.ShouldSkip() {
		return false, ErrServerDown
	}
	if !s.probe.Probed() && s.probe.ProbeIfDue(ctx) == ProbeDown {
		return false, ErrServerDown
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	packet, newETag, notModified, err := s.gateway.FetchSyncPacket(ctx, s.etag)
	if err != nil {
		s.logger.Warn().Err(err).Msg("sync fetch failed")
		return false, err
	}

	if notModified {
		s.lastSync = s.now()
		s.logger.Debug().Str("etag", s.etag).Msg("sync: snapshot unchanged")
		return false, nil
	}

	required := bitset.RequiredBytes(uint64(packet.MaxID))
	if required == 0 || required > s.bits.CapacityBytes() {
		// collapse to empty rather than keeping a stale snapshot
		s.bits.Reset(packet.MaxID)
		s.persistMaxCardID(ctx, 0)
		s.logger.Error().
			Uint32("max_id", packet.MaxID).
			Uint64("capacity_bytes", s.bits.CapacityBytes()).
			Msg("sync rejected: snapshot exceeds bitset capacity")
		return false, ErrCapacityExceeded
	}

	s.bits.Reset(packet.MaxID)
	decodeBitsInto(s.bits, packet.Bits)

	s.etag = newETag
	s.lastSync = s.now()
	s.persistBitset(ctx, uint64(packet.MaxID), newETag)

	allowFPs := fingerprintAll(packet.AllowList())
	denyFPs := fingerprintAll(packet.DenyList())
	if len(allowFPs) > 0 || len(denyFPs) > 0 {
		s.cache.ReplaceAll(allowFPs, denyFPs)
		s.persistHashSets(ctx)
	}

	s.logger.Info().
		Uint32("max_id", packet.MaxID).
		Int("allow_uids", len(allowFPs)).
		Int("deny_uids", len(denyFPs)).
		Str("etag", newETag).
		Msg("sync applied")
	return true, nil
}

// decodeBitsInto writes the hex bit string into the active byte range, two
// characters per byte. A malformed or short string stops the decode and
// leaves the remaining bytes zero; a string longer than the active range is
// cut off by the bounds-checked writer.
func decodeBitsInto(bits *bitset.Bitset, hexBits string) {
	var buf [1]byte
	for i, idx := 0, uint64(0); i+1 < len(hexBits); i, idx = i+2, idx+1 {
		if _, err := hex.Decode(buf[:], []byte(hexBits[i:i+2])); err != nil {
			return
		}
		if !bits.WriteByte(idx, buf[0]) {
			return
		}
	}
}

func fingerprintAll(uids []string) []uint64 {
	if len(uids) == 0 {
		return nil
	}
	fps := make([]uint64, 0, len(uids))
	for _, raw := range uids {
		fps = append(fps, uid.Fingerprint(raw))
	}
	return fps
}

// Persistence is best-effort: a failed write is logged and the sync
// continues on in-memory state.

func (s *syncService) persistBitset(ctx context.Context, maxCardID uint64, etag string) {
	if err := s.scalars.PutString(ctx, store.ScalarNamespaceAuth, store.KeyBitsetETag, etag); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist sync etag")
	}
	s.persistMaxCardID(ctx, maxCardID)

	if snapshot := s.bits.Snapshot(); snapshot != nil {
		if err := s.blobs.Save(ctx, store.BitsetSnapshotName, snapshot); err != nil {
			s.logger.Warn().Err(err).Msg("failed to persist bitset snapshot")
		}
	}
}

func (s *syncService) persistMaxCardID(ctx context.Context, maxCardID uint64) {
	if err := s.scalars.PutUint(ctx, store.ScalarNamespaceAuth, store.KeyMaxCardID, maxCardID); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist max card id")
	}
}

func (s *syncService) persistHashSets(ctx context.Context) {
	allow, deny := s.cache.Snapshot()
	if err := s.blobs.Save(ctx, store.HashSetsSnapshotName, store.EncodeHashSets(allow, deny)); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist hash sets snapshot")
	}
}
