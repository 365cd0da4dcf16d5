package store

import (
	"errors"
	"testing"
)

func TestHashSets_RoundTrip(t *testing.T) {
	allow := []uint64{0xc551a56c77806699, 0xaf63fc4c860222ec}
	deny := []uint64{0x61c8dee34d5403d5}

	allowOut, denyOut, err := DecodeHashSets(EncodeHashSets(allow, deny))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(allowOut) != 2 || allowOut[0] != allow[0] || allowOut[1] != allow[1] {
		t.Errorf("unexpected allow set: %x", allowOut)
	}
	if len(denyOut) != 1 || denyOut[0] != deny[0] {
		t.Errorf("unexpected deny set: %x", denyOut)
	}
}

func TestHashSets_EmptySets(t *testing.T) {
	blob := EncodeHashSets(nil, nil)
	if len(blob) != 8 {
		t.Fatalf("expected header-only blob, got %d bytes", len(blob))
	}

	allow, deny, err := DecodeHashSets(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(allow) != 0 || len(deny) != 0 {
		t.Errorf("expected empty sets, got allow=%v deny=%v", allow, deny)
	}
}

func TestDecodeHashSets_TruncatedHeader(t *testing.T) {
	_, _, err := DecodeHashSets([]byte{0x01, 0x00, 0x00})
	if !errors.Is(err, ErrSnapshotCorrupted) {
		t.Fatalf("expected ErrSnapshotCorrupted, got %v", err)
	}
}

func TestDecodeHashSets_CountMismatch(t *testing.T) {
	blob := EncodeHashSets([]uint64{1, 2}, []uint64{3})

	// truncate one entry: declared counts no longer match the byte length
	_, _, err := DecodeHashSets(blob[:len(blob)-8])
	if !errors.Is(err, ErrSnapshotCorrupted) {
		t.Fatalf("expected ErrSnapshotCorrupted, got %v", err)
	}

	// inflate the declared allow count without adding entries
	blob[0] = 0xFF
	_, _, err = DecodeHashSets(blob)
	if !errors.Is(err, ErrSnapshotCorrupted) {
		t.Fatalf("expected ErrSnapshotCorrupted, got %v", err)
	}
}
