// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/adapter"
	"github.com/MKhiriev/go-gate-keeper/internal/bitset"
	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/hashcache"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

// DeviceServices wires the device's authorization core: the shared bitset
// and hash cache, the reachability probe, and the sync and authorize
// services built on top of them.
type DeviceServices struct {
	Reachability *Reachability
	Sync         SyncService
	Authorize    AuthorizeService
}

// NewDeviceServices builds the device service graph and restores persisted
// state so the device is offline-ready before the first sync:
//  1. The bitset arena is sized once from cfg.App.MaxCards.
//  2. The scalar store supplies the last sync ETag and accepted max card id.
//  3. The bitset and hash-set snapshots are loaded; a corrupt or mismatched
//     snapshot is discarded entirely and the state starts empty.
//
// gateway may be nil for offline-only deployments.
func NewDeviceServices(cfg *config.DeviceConfig, storages *store.DeviceStorages, gateway adapter.ServerGateway, log *logger.Logger) (*DeviceServices, error) {
	log.Info().Msg("creating device services...")

	bits := bitset.New(cfg.App.MaxCards)
	cache := hashcache.New()

	etag, err := restoreState(context.Background(), bits, cache, storages, log)
	if err != nil {
		return nil, fmt.Errorf("restoring persisted state: %w", err)
	}

	probe := NewReachability(gateway, cfg.Adapter.ProbeTimeout, log)

	return &DeviceServices{
		Reachability: probe,
		Sync:         NewSyncService(gateway, probe, bits, cache, storages, etag, log),
		Authorize:    NewAuthorizeService(gateway, probe, bits, cache, storages, log),
	}, nil
}

// restoreState loads the persisted scalars and snapshots into the fresh
// bitset and hash cache. Only a scalar-store failure is fatal (the device db
// is unusable); snapshot problems degrade to an empty in-memory state.
func restoreState(ctx context.Context, bits *bitset.Bitset, cache *hashcache.Cache, storages *store.DeviceStorages, log *logger.Logger) (etag string, err error) {
	etag, err = storages.Scalars.GetString(ctx, store.ScalarNamespaceAuth, store.KeyBitsetETag)
	if err != nil {
		return "", err
	}
	maxCardID, err := storages.Scalars.GetUint(ctx, store.ScalarNamespaceAuth, store.KeyMaxCardID)
	if err != nil {
		return "", err
	}

	blob, err := storages.Blobs.Load(ctx, store.BitsetSnapshotName, int64(bits.CapacityBytes()))
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("bitset snapshot unreadable, starting empty")
	case blob != nil:
		if bits.Restore(blob, uint32(maxCardID)) {
			log.Info().Uint64("max_id", maxCardID).Int("bytes", len(blob)).Msg("restored bitset snapshot")
		} else {
			log.Warn().Uint64("max_id", maxCardID).Int("bytes", len(blob)).Msg("bitset snapshot rejected, starting empty")
		}
	}

	// 8-byte header plus capped entry counts keep a corrupt length field
	// from allocating unbounded memory
	const maxHashSetsBytes = 8 + 16*bitset.DefaultMaxCards
	blob, err = storages.Blobs.Load(ctx, store.HashSetsSnapshotName, maxHashSetsBytes)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("hash sets snapshot unreadable, starting empty")
	case blob != nil:
		allow, deny, decodeErr := store.DecodeHashSets(blob)
		if decodeErr != nil {
			log.Warn().Err(decodeErr).Msg("hash sets snapshot rejected, starting empty")
			break
		}
		cache.ReplaceAll(allow, deny)
		log.Info().Int("allow", len(allow)).Int("deny", len(deny)).Msg("restored hash sets snapshot")
	}

	return etag, nil
}
