// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hashcache holds the two sorted sets of credential fingerprints
// the device learns from individual lookups: one for known-allowed cards,
// one for known-denied cards.
//
// The two sets are kept mutually exclusive: learning a fingerprint into one
// set removes it from the other. Membership tests are binary searches over
// sorted slices, so cache reads on the scan path stay cheap even with tens
// of thousands of learned cards.
package hashcache

import (
	"slices"
	"sync"
)

// Verdict selects one of the two cached sets.
type Verdict int

const (
	Deny Verdict = iota
	Allow
)

// Cache is the pair of sorted allow/deny fingerprint sets. Safe for
// concurrent use; all operations are total over valid state and never fail.
//
// Callers are responsible for persisting after mutation; persistence is
// deliberately not automatic so bulk updates can batch a single write.
type Cache struct {
	mu    sync.RWMutex
	allow []uint64
	deny  []uint64
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{}
}

// Contains reports whether fp is present in the set selected by which.
func (c *Cache) Contains(fp uint64, which Verdict) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, found := slices.BinarySearch(c.target(which), fp)
	return found
}

// Learn records a per-card server answer: fp is inserted at its sorted
// position in the target set (no-op if already present) and removed from
// the opposite set if present, preserving disjointness.
func (c *Cache) Learn(fp uint64, authorized bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, opposite := &c.deny, &c.allow
	if authorized {
		target, opposite = &c.allow, &c.deny
	}

	if idx, found := slices.BinarySearch(*target, fp); !found {
		*target = slices.Insert(*target, idx, fp)
	}
	if idx, found := slices.BinarySearch(*opposite, fp); found {
		*opposite = slices.Delete(*opposite, idx, idx+1)
	}
}

// Forget removes fp from both sets.
func (c *Cache) Forget(fp uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, set := range []*[]uint64{&c.allow, &c.deny} {
		if idx, found := slices.BinarySearch(*set, fp); found {
			*set = slices.Delete(*set, idx, idx+1)
		}
	}
}

// ReplaceAll atomically swaps both sets with the supplied replacements,
// used on bulk sync. The inputs are sorted and deduplicated here so callers
// can hand over raw fingerprint lists; deny membership wins over allow to
// keep the sets disjoint under the fail-closed policy.
func (c *Cache) ReplaceAll(newAllow, newDeny []uint64) {
	allow := sortedDedup(newAllow)
	deny := sortedDedup(newDeny)

	// drop any fingerprint present on both sides from the allow set
	disjointAllow := allow[:0:len(allow)]
	for _, fp := range allow {
		if _, found := slices.BinarySearch(deny, fp); !found {
			disjointAllow = append(disjointAllow, fp)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.allow = disjointAllow
	c.deny = deny
}

// Snapshot returns copies of both sorted sets for persistence.
func (c *Cache) Snapshot() (allow, deny []uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.allow), slices.Clone(c.deny)
}

// Len returns the sizes of the allow and deny sets.
func (c *Cache) Len() (allowLen, denyLen int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.allow), len(c.deny)
}

func (c *Cache) target(which Verdict) []uint64 {
	if which == Allow {
		return c.allow
	}
	return c.deny
}

func sortedDedup(fps []uint64) []uint64 {
	out := slices.Clone(fps)
	slices.Sort(out)
	return slices.Compact(out)
}
