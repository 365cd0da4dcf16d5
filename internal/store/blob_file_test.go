package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

func newTestBlobStore(t *testing.T) (BlobStore, string) {
	dir := t.TempDir()
	store, err := NewBlobFileStore(dir, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create blob store: %v", err)
	}
	return store, dir
}

func TestBlobFileStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestBlobStore(t)
	ctx := context.Background()

	payload := []byte{0x01, 0x00, 0xFF, 0x80}
	if err := store.Save(ctx, BitsetSnapshotName, payload); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load(ctx, BitsetSnapshotName, 1024)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if string(loaded) != string(payload) {
		t.Errorf("expected %v, got %v", payload, loaded)
	}
}

func TestBlobFileStore_LoadMissing(t *testing.T) {
	store, _ := newTestBlobStore(t)

	data, err := store.Load(context.Background(), "absent.bin", 1024)
	if err != nil {
		t.Fatalf("missing blob must not be an error, got %v", err)
	}
	if data != nil {
		t.Errorf("expected nil data, got %v", data)
	}
}

func TestBlobFileStore_LoadTooLarge(t *testing.T) {
	store, _ := newTestBlobStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, BitsetSnapshotName, make([]byte, 100)); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	_, err := store.Load(ctx, BitsetSnapshotName, 99)
	if !errors.Is(err, ErrSnapshotTooLarge) {
		t.Fatalf("expected ErrSnapshotTooLarge, got %v", err)
	}
}

func TestBlobFileStore_SaveOverwritesAndLeavesNoTemp(t *testing.T) {
	store, dir := newTestBlobStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, HashSetsSnapshotName, []byte("old")); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := store.Save(ctx, HashSetsSnapshotName, []byte("new")); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load(ctx, HashSetsSnapshotName, 1024)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if string(loaded) != "new" {
		t.Errorf("expected overwritten contents, got %q", loaded)
	}

	if _, err := os.Stat(filepath.Join(dir, HashSetsSnapshotName+".tmp")); !os.IsNotExist(err) {
		t.Error("expected no temporary file after a successful save")
	}
}

func TestBlobFileStore_ExistsAndRemove(t *testing.T) {
	store, _ := newTestBlobStore(t)
	ctx := context.Background()

	if store.Exists(ctx, BitsetSnapshotName) {
		t.Error("expected blob to be absent before save")
	}

	if err := store.Save(ctx, BitsetSnapshotName, []byte{0x00}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if !store.Exists(ctx, BitsetSnapshotName) {
		t.Error("expected blob to exist after save")
	}

	if err := store.Remove(ctx, BitsetSnapshotName); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if store.Exists(ctx, BitsetSnapshotName) {
		t.Error("expected blob to be gone after remove")
	}

	// removing again is not an error
	if err := store.Remove(ctx, BitsetSnapshotName); err != nil {
		t.Fatalf("unexpected error removing absent blob: %v", err)
	}
}
