// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the device's authorization core: the sync
// engine that refreshes the local bitset from the registry, the decision
// function consulted on every scan, and the shared reachability probe that
// gates all server-touching paths.
package service

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService refreshes the device's authorization state from the registry
// server.
type SyncService interface {
	// SyncFromServer performs one conditional sync. changed is true when a
	// fresh snapshot was applied and false when the server answered
	// 304 Not Modified. A skipped or failed sync returns an error and
	// leaves all authorization state untouched.
	SyncFromServer(ctx context.Context) (changed bool, err error)
}

// AuthorizeService answers scan-time authorization queries.
type AuthorizeService interface {
	// IsAuthorized decides whether the raw scanned identifier may pass.
	// It never returns an error: every failure mode collapses to a deny.
	IsAuthorized(ctx context.Context, rawUID string) bool

	// Diagnostics reports the current size of the authorization state for
	// display and logging.
	Diagnostics() Diagnostics
}

// RegistryService is the server-side card registry: card lifecycle over
// the cards table, the compact sync snapshot, scan intake, and the
// one-shot enroll state.
type RegistryService interface {
	// RegisterCard creates or revives the card for req.UID. A nil
	// req.Authorized defaults to granting access.
	RegisterCard(ctx context.Context, req models.RegisterCardRequest) (models.Card, error)

	// GetCard returns the live card for uid, or [store.ErrCardNotFound].
	GetCard(ctx context.Context, uid string) (models.Card, error)

	// ListCards returns every live card ordered by card id.
	ListCards(ctx context.Context) ([]models.Card, error)

	// SetAuthorized flips the authorized flag of a live card.
	SetAuthorized(ctx context.Context, uid string, authorized bool) (models.Card, error)

	// RemoveCard tombstones a live card; its card id is never reused.
	RemoveCard(ctx context.Context, uid string) error

	// LookupCard answers a device-side per-card query. An unknown or
	// deleted card is reported with Exists=false, not an error.
	LookupCard(ctx context.Context, uid string) (models.CardLookup, error)

	// BuildSyncPacket assembles the compact authorization snapshot served
	// by GET /api/sync.
	BuildSyncPacket(ctx context.Context) (models.SyncPacket, error)

	// RecordScan ingests a reported scan, applying and disarming any armed
	// enroll mode.
	RecordScan(ctx context.Context, rawUID string) (models.ScanResult, error)

	// ArmEnroll arms (or, with [models.EnrollNone], disarms) the one-shot
	// enroll mode consumed by the next reported scan.
	ArmEnroll(mode models.EnrollMode) error

	// Status reports the last scanned UID and the current enroll mode.
	Status() models.ServerStatus
}

// Diagnostics is a point-in-time summary of the device's authorization
// state.
type Diagnostics struct {
	// CardCount is the number of card ids the bitset currently describes.
	CardCount uint64
	// BitsetBytes is the number of arena bytes in active use.
	BitsetBytes uint64
	// AllowedFingerprints and DeniedFingerprints are the learned hash-cache
	// set sizes.
	AllowedFingerprints int
	DeniedFingerprints  int
}
