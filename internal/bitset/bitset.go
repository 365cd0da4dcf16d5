// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bitset implements the fixed-capacity authorization bitset the
// device keeps synchronized from the registry server.
//
// The backing storage is a single arena allocated once at construction and
// never resized; a sync only adjusts the logical card count and rewrites
// bytes inside the arena. This trades a fixed worst-case reservation for
// the complete absence of allocation failures and fragmentation on the
// decision path.
package bitset

import (
	"math"
	"sync"
)

// DefaultMaxCards is the capacity cap used when the configuration does not
// supply one: 200,000 cards → a 25,000-byte arena.
const DefaultMaxCards = 200_000

// RequiredBytes returns the number of bytes needed to hold one bit for each
// card id in [0, maxCardID], i.e. (maxCardID+1+7)/8.
//
// It returns 0 when the computation would overflow. Callers must treat 0 as
// "invalid/unsupported size", never as "no cards": a valid range always
// needs at least one byte.
func RequiredBytes(maxCardID uint64) uint64 {
	if maxCardID > math.MaxUint64-8 {
		return 0
	}
	return (maxCardID + 8) / 8
}

// Bitset is a bounds-checked bit-per-card authorization table.
//
// All accessors are safe for concurrent use. Out-of-range reads return
// false and out-of-range writes are silent no-ops: an authorization-
// affecting mutation must never take the device down.
type Bitset struct {
	mu sync.RWMutex

	// storage is the fixed arena. Allocated once in New, owned for the
	// lifetime of the bitset, never reallocated.
	storage   []byte
	maxCardID uint32
	populated bool
}

// New constructs a Bitset with capacity for card ids in [0, maxCards-1].
// A maxCards of 0 falls back to DefaultMaxCards. The capacity parameter
// exists so tests can construct pathologically small bitsets; production
// code passes the configured cap.
func New(maxCards uint64) *Bitset {
	if maxCards == 0 {
		maxCards = DefaultMaxCards
	}
	return &Bitset{storage: make([]byte, (maxCards+7)/8)}
}

// CapacityBytes returns the size of the fixed arena.
func (b *Bitset) CapacityBytes() uint64 {
	return uint64(len(b.storage))
}

// MaxCardID returns the highest card id covered by the last successful
// Reset or Restore, or 0 if none has happened yet.
func (b *Bitset) MaxCardID() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.maxCardID
}

// CardCount returns the number of card ids the bitset currently describes
// (maxCardID+1), or 0 before any successful Reset or Restore.
func (b *Bitset) CardCount() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.populated {
		return 0
	}
	return uint64(b.maxCardID) + 1
}

// SizeBytes returns the number of arena bytes in active use, for
// diagnostics. 0 before any successful Reset or Restore.
func (b *Bitset) SizeBytes() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.populated {
		return 0
	}
	return RequiredBytes(uint64(b.maxCardID))
}

// Reset prepares the bitset for a wholesale replacement covering card ids
// [0, maxCardID]: it validates the new cardinality against the fixed
// capacity, zeroes exactly the required byte range, and commits the new
// logical size.
//
// If the required size is invalid or exceeds capacity, nothing is written,
// the cardinality collapses to empty (never a partially-applied snapshot),
// and Reset returns false.
func (b *Bitset) Reset(maxCardID uint32) bool {
	required := RequiredBytes(uint64(maxCardID))

	b.mu.Lock()
	defer b.mu.Unlock()

	if required == 0 || required > uint64(len(b.storage)) {
		b.maxCardID = 0
		b.populated = false
		return false
	}

	clear(b.storage[:required])
	b.maxCardID = maxCardID
	b.populated = true
	return true
}

// Get reports whether cardID is authorized. Always false for ids above the
// current cardinality or before any successful Reset/Restore.
func (b *Bitset) Get(cardID uint32) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.populated || cardID > b.maxCardID {
		return false
	}
	return b.storage[cardID>>3]&(1<<(cardID&7)) != 0
}

// Set marks cardID authorized. No-op when out of range.
func (b *Bitset) Set(cardID uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.populated || cardID > b.maxCardID {
		return
	}
	b.storage[cardID>>3] |= 1 << (cardID & 7)
}

// Clear marks cardID not authorized. No-op when out of range.
func (b *Bitset) Clear(cardID uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.populated || cardID > b.maxCardID {
		return
	}
	b.storage[cardID>>3] &^= 1 << (cardID & 7)
}

// WriteByte stores val at byte index idx of the active range. Returns false
// without writing when idx is outside the range committed by Reset.
func (b *Bitset) WriteByte(idx uint64, val byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.populated || idx >= RequiredBytes(uint64(b.maxCardID)) {
		return false
	}
	b.storage[idx] = val
	return true
}

// ReadByte loads the byte at index idx of the active range. The second
// return value is false when idx is out of range.
func (b *Bitset) ReadByte(idx uint64) (byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.populated || idx >= RequiredBytes(uint64(b.maxCardID)) {
		return 0, false
	}
	return b.storage[idx], true
}

// Snapshot returns a copy of the active byte range for persistence, or nil
// before any successful Reset/Restore.
func (b *Bitset) Snapshot() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.populated {
		return nil
	}
	required := RequiredBytes(uint64(b.maxCardID))
	snapshot := make([]byte, required)
	copy(snapshot, b.storage[:required])
	return snapshot
}

// Restore loads a persisted snapshot. The blob length must match the
// required byte count for maxCardID exactly and fit the arena; otherwise
// the bitset is left empty and Restore returns false.
func (b *Bitset) Restore(data []byte, maxCardID uint32) bool {
	required := RequiredBytes(uint64(maxCardID))

	b.mu.Lock()
	defer b.mu.Unlock()

	if required == 0 || required > uint64(len(b.storage)) || uint64(len(data)) != required {
		b.maxCardID = 0
		b.populated = false
		return false
	}

	copy(b.storage[:required], data)
	b.maxCardID = maxCardID
	b.populated = true
	return true
}
