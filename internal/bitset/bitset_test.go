// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bitset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredBytes(t *testing.T) {
	tests := []struct {
		name      string
		maxCardID uint64
		want      uint64
	}{
		{name: "single card", maxCardID: 0, want: 1},
		{name: "seven cards", maxCardID: 6, want: 1},
		{name: "eight cards", maxCardID: 7, want: 1},
		{name: "nine cards", maxCardID: 8, want: 2},
		{name: "eleven cards", maxCardID: 10, want: 2},
		{name: "default cap", maxCardID: DefaultMaxCards - 1, want: 25_000},
		{name: "overflow", maxCardID: math.MaxUint64, want: 0},
		{name: "near overflow", maxCardID: math.MaxUint64 - 7, want: 0},
		{name: "largest valid", maxCardID: math.MaxUint64 - 8, want: (math.MaxUint64) / 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredBytes(tt.maxCardID))
		})
	}
}

func TestBitset_SetGetClear(t *testing.T) {
	b := New(64)
	require.True(t, b.Reset(15))

	for _, id := range []uint32{0, 1, 7, 8, 15} {
		assert.False(t, b.Get(id), "fresh bitset must be all zero")
		b.Set(id)
		assert.True(t, b.Get(id), "get after set, id=%d", id)
		b.Clear(id)
		assert.False(t, b.Get(id), "get after clear, id=%d", id)
	}
}

func TestBitset_OutOfRangeReadsNeverReflectMutations(t *testing.T) {
	b := New(64)
	require.True(t, b.Reset(7))

	// mutations above max card id are silently dropped
	b.Set(8)
	b.Set(63)
	assert.False(t, b.Get(8))
	assert.False(t, b.Get(63))
	assert.False(t, b.Get(math.MaxUint32))
}

func TestBitset_UninitializedDeniesEverything(t *testing.T) {
	b := New(64)

	assert.False(t, b.Get(0))
	b.Set(0) // no-op before the first successful reset
	assert.False(t, b.Get(0))
	assert.EqualValues(t, 0, b.CardCount())
	assert.EqualValues(t, 0, b.SizeBytes())
}

func TestBitset_ResetZeroesRequiredRange(t *testing.T) {
	b := New(64)
	require.True(t, b.Reset(15))
	b.Set(3)
	b.Set(12)

	require.True(t, b.Reset(15))
	assert.False(t, b.Get(3))
	assert.False(t, b.Get(12))
}

func TestBitset_ResetRejectsOversizedCardinality(t *testing.T) {
	b := New(16) // 2-byte arena
	require.True(t, b.Reset(15))
	b.Set(5)

	// 17 cards need 3 bytes: must be rejected wholesale and collapse to empty
	assert.False(t, b.Reset(16))
	assert.EqualValues(t, 0, b.MaxCardID())
	assert.EqualValues(t, 0, b.CardCount())
	assert.False(t, b.Get(5))
}

func TestBitset_WriteReadByte(t *testing.T) {
	b := New(64)
	require.True(t, b.Reset(15)) // 2 active bytes

	assert.True(t, b.WriteByte(0, 0xFF))
	assert.True(t, b.WriteByte(1, 0x03))
	assert.False(t, b.WriteByte(2, 0xAA), "index past required byte count fails closed")

	v, ok := b.ReadByte(0)
	require.True(t, ok)
	assert.EqualValues(t, 0xFF, v)

	_, ok = b.ReadByte(2)
	assert.False(t, ok)

	// decoded bytes are visible through the bit accessors
	assert.True(t, b.Get(0))
	assert.True(t, b.Get(7))
	assert.True(t, b.Get(8))
	assert.True(t, b.Get(9))
	assert.False(t, b.Get(10))
}

func TestBitset_SnapshotRestoreRoundTrip(t *testing.T) {
	b := New(64)
	require.True(t, b.Reset(10))
	b.Set(0)
	b.Set(9)

	snap := b.Snapshot()
	require.Len(t, snap, 2)

	restored := New(64)
	require.True(t, restored.Restore(snap, 10))
	assert.Equal(t, snap, restored.Snapshot())
	assert.EqualValues(t, 10, restored.MaxCardID())
	assert.True(t, restored.Get(0))
	assert.True(t, restored.Get(9))
	assert.False(t, restored.Get(1))
}

func TestBitset_RestoreRejectsSizeMismatch(t *testing.T) {
	b := New(64)

	assert.False(t, b.Restore([]byte{0xFF}, 10), "1 byte cannot describe 11 cards")
	assert.False(t, b.Restore([]byte{0xFF, 0xFF, 0xFF}, 10), "3 bytes over-describe 11 cards")
	assert.EqualValues(t, 0, b.CardCount())
	assert.False(t, b.Get(0))
}

func TestBitset_SnapshotBeforeResetIsNil(t *testing.T) {
	assert.Nil(t, New(64).Snapshot())
}
