// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hashcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_LearnAndContains(t *testing.T) {
	c := New()

	c.Learn(42, true)
	assert.True(t, c.Contains(42, Allow))
	assert.False(t, c.Contains(42, Deny))

	c.Learn(7, false)
	assert.True(t, c.Contains(7, Deny))
	assert.False(t, c.Contains(7, Allow))

	assert.False(t, c.Contains(1000, Allow))
	assert.False(t, c.Contains(1000, Deny))
}

func TestCache_LearnIsIdempotent(t *testing.T) {
	c := New()

	c.Learn(42, true)
	c.Learn(42, true)

	allow, deny := c.Snapshot()
	assert.Equal(t, []uint64{42}, allow)
	assert.Empty(t, deny)
}

func TestCache_LearnMovesBetweenSets(t *testing.T) {
	c := New()

	c.Learn(42, false)
	require.True(t, c.Contains(42, Deny))

	// a later authorized answer must evict the stale deny entry
	c.Learn(42, true)
	assert.True(t, c.Contains(42, Allow))
	assert.False(t, c.Contains(42, Deny))
}

func TestCache_SetsStayDisjointUnderAnyLearnSequence(t *testing.T) {
	c := New()

	seq := []struct {
		fp         uint64
		authorized bool
	}{
		{1, true}, {2, false}, {1, false}, {3, true}, {2, true},
		{3, true}, {1, true}, {2, false}, {1, false}, {1, true},
	}
	for _, s := range seq {
		c.Learn(s.fp, s.authorized)
	}

	allow, deny := c.Snapshot()
	denySet := make(map[uint64]bool, len(deny))
	for _, fp := range deny {
		denySet[fp] = true
	}
	for _, fp := range allow {
		assert.False(t, denySet[fp], "fingerprint %d present in both sets", fp)
	}
}

func TestCache_SnapshotIsSorted(t *testing.T) {
	c := New()
	for _, fp := range []uint64{500, 3, 9999, 42, 1} {
		c.Learn(fp, true)
	}

	allow, _ := c.Snapshot()
	assert.Equal(t, []uint64{1, 3, 42, 500, 9999}, allow)
}

func TestCache_ReplaceAll(t *testing.T) {
	c := New()
	c.Learn(1, true)
	c.Learn(2, false)

	c.ReplaceAll([]uint64{30, 10, 20, 10}, []uint64{50, 40, 50})

	allow, deny := c.Snapshot()
	assert.Equal(t, []uint64{10, 20, 30}, allow)
	assert.Equal(t, []uint64{40, 50}, deny)

	// previously learned entries are gone after the bulk swap
	assert.False(t, c.Contains(1, Allow))
	assert.False(t, c.Contains(2, Deny))
}

func TestCache_ReplaceAll_DenyWinsOnOverlap(t *testing.T) {
	c := New()

	c.ReplaceAll([]uint64{1, 2, 3}, []uint64{2})

	assert.False(t, c.Contains(2, Allow))
	assert.True(t, c.Contains(2, Deny))
	assert.True(t, c.Contains(1, Allow))
	assert.True(t, c.Contains(3, Allow))
}

func TestCache_Forget(t *testing.T) {
	c := New()
	c.Learn(1, true)
	c.Learn(2, false)

	c.Forget(1)
	c.Forget(2)
	c.Forget(3) // absent: no-op

	allowLen, denyLen := c.Len()
	assert.Zero(t, allowLen)
	assert.Zero(t, denyLen)
}
