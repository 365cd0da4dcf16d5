// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/bitset"
	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/internal/uid"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// registryService is the default implementation of [RegistryService].
//
// Card records live in the repository; the enroll mode and the last scanned
// UID are transient in-memory state, lost on restart by design. An armed
// enroll mode is consumed by exactly one reported scan.
type registryService struct {
	cards           store.CardRepository
	includeUIDLists bool
	logger          *logger.Logger

	now func() time.Time

	mu          sync.Mutex
	enroll      models.EnrollMode
	lastScanned string
}

// NewRegistryService constructs a [RegistryService] backed by the given
// card repository.
func NewRegistryService(cards store.CardRepository, cfg config.Server, logger *logger.Logger) RegistryService {
	logger.Debug().Msg("creating registry service")
	return &registryService{
		cards:           cards,
		includeUIDLists: cfg.IncludeUIDLists,
		logger:          logger,
		now:             time.Now,
	}
}

// RegisterCard implements [RegistryService]. The UID is normalized before
// storage so the registry and the device fingerprint the same bytes.
func (s *registryService) RegisterCard(ctx context.Context, req models.RegisterCardRequest) (models.Card, error) {
	authorized := true
	if req.Authorized != nil {
		authorized = *req.Authorized
	}

	normalized := uid.Normalize(req.UID)
	card, err := s.cards.RegisterCard(ctx, models.Card{
		UID:        normalized,
		Authorized: authorized,
		AddedAt:    s.now().Unix(),
		UIDHash:    hashUID(normalized),
	})
	if err != nil {
		return models.Card{}, err
	}

	s.logger.Info().
		Str("uid", card.UID).
		Int64("card_id", card.CardID).
		Bool("authorized", card.Authorized).
		Msg("card registered")
	return card, nil
}

// GetCard implements [RegistryService].
func (s *registryService) GetCard(ctx context.Context, rawUID string) (models.Card, error) {
	return s.cards.GetCard(ctx, uid.Normalize(rawUID))
}

// ListCards implements [RegistryService].
func (s *registryService) ListCards(ctx context.Context) ([]models.Card, error) {
	return s.cards.ListCards(ctx)
}

// SetAuthorized implements [RegistryService].
func (s *registryService) SetAuthorized(ctx context.Context, rawUID string, authorized bool) (models.Card, error) {
	card, err := s.cards.SetAuthorized(ctx, uid.Normalize(rawUID), authorized)
	if err != nil {
		return models.Card{}, err
	}

	s.logger.Info().
		Str("uid", card.UID).
		Bool("authorized", card.Authorized).
		Msg("card authorization changed")
	return card, nil
}

// RemoveCard implements [RegistryService].
func (s *registryService) RemoveCard(ctx context.Context, rawUID string) error {
	normalized := uid.Normalize(rawUID)
	if err := s.cards.SoftDeleteCard(ctx, normalized, s.now().Unix()); err != nil {
		return err
	}

	s.logger.Info().Str("uid", normalized).Msg("card removed")
	return nil
}

// LookupCard implements [RegistryService].
func (s *registryService) LookupCard(ctx context.Context, rawUID string) (models.CardLookup, error) {
	card, err := s.cards.GetCard(ctx, uid.Normalize(rawUID))
	switch {
	case errors.Is(err, store.ErrCardNotFound):
		return models.CardLookup{Exists: false}, nil
	case err != nil:
		return models.CardLookup{}, err
	}

	return models.CardLookup{
		Exists:     true,
		Authorized: card.Authorized,
		CardID:     card.CardID,
		UIDHash:    card.UIDHash,
	}, nil
}

// BuildSyncPacket implements [RegistryService]. The bit string covers card
// ids [0, max assigned id]; tombstoned and revoked cards keep their position
// with the bit cleared. Card id 0 is never assigned, so an empty registry
// serves max_id 0 with a single zero byte.
func (s *registryService) BuildSyncPacket(ctx context.Context) (models.SyncPacket, error) {
	maxID, err := s.cards.MaxCardID(ctx)
	if err != nil {
		return models.SyncPacket{}, err
	}

	ids, err := s.cards.AuthorizedCardIDs(ctx)
	if err != nil {
		return models.SyncPacket{}, err
	}

	buf := make([]byte, bitset.RequiredBytes(uint64(maxID)))
	for _, id := range ids {
		if id < 0 || id > maxID {
			continue
		}
		buf[id>>3] |= 1 << (id & 7)
	}

	packet := models.SyncPacket{
		MaxID: uint32(maxID),
		Bits:  hex.EncodeToString(buf),
	}

	if s.includeUIDLists {
		allow, deny, err := s.cards.PartitionedUIDs(ctx)
		if err != nil {
			return models.SyncPacket{}, err
		}
		packet.Allow, packet.Deny = allow, deny
	}

	return packet, nil
}

// RecordScan implements [RegistryService]. An armed enroll mode is disarmed
// before it is applied so a repository failure cannot replay it onto a
// later scan.
func (s *registryService) RecordScan(ctx context.Context, rawUID string) (models.ScanResult, error) {
	normalized := uid.Normalize(rawUID)

	s.mu.Lock()
	mode := s.enroll
	s.enroll = models.EnrollNone
	s.lastScanned = normalized
	s.mu.Unlock()

	result := models.ScanResult{
		OK:   true,
		UID:  normalized,
		Hash: hashUID(normalized),
	}

	switch mode {
	case models.EnrollGrant:
		if _, err := s.RegisterCard(ctx, models.RegisterCardRequest{UID: normalized}); err != nil {
			return models.ScanResult{}, err
		}
		result.Enrolled = true
		s.logger.Info().Str("uid", normalized).Msg("scan enrolled card")

	case models.EnrollRevoke:
		_, err := s.cards.SetAuthorized(ctx, normalized, false)
		switch {
		case errors.Is(err, store.ErrCardNotFound):
			// revoking an unknown card is a no-op, the mode is still spent
			s.logger.Warn().Str("uid", normalized).Msg("revoke scan for unknown card")
		case err != nil:
			return models.ScanResult{}, err
		default:
			result.Enrolled = true
			s.logger.Info().Str("uid", normalized).Msg("scan revoked card")
		}
	}

	return result, nil
}

// ArmEnroll implements [RegistryService].
func (s *registryService) ArmEnroll(mode models.EnrollMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEnrollMode, mode)
	}

	s.mu.Lock()
	s.enroll = mode
	s.mu.Unlock()

	s.logger.Info().Str("mode", string(mode)).Msg("enroll mode set")
	return nil
}

// Status implements [RegistryService].
func (s *registryService) Status() models.ServerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.ServerStatus{
		LastScanned: s.lastScanned,
		EnrollMode:  s.enroll,
	}
}

// hashUID renders the 64-bit fingerprint the way the uid_hash column and
// the scan response expect it: 16 lowercase hex digits.
func hashUID(normalizedUID string) string {
	return fmt.Sprintf("%016x", uid.Fingerprint(normalizedUID))
}
