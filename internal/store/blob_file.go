package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// blobFileStore is the filesystem-backed implementation of [BlobStore]. It
// keeps each snapshot as a single file under the configured data directory.
//
// Save writes to a temporary sibling and renames it over the target, so a
// crash mid-write leaves the previous snapshot file intact.
type blobFileStore struct {
	dir    string
	logger *logger.Logger
}

// NewBlobFileStore constructs a [BlobStore] rooted at dir, creating the
// directory if it does not exist yet.
func NewBlobFileStore(dir string, logger *logger.Logger) (BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewBlobFileStore").Msg("error creating snapshot directory")
		return nil, fmt.Errorf("error creating snapshot directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating blob file store")
	return &blobFileStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save persists data under name atomically: the bytes are written to a
// ".tmp" sibling first and renamed over the target only after a successful
// full write.
func (b *blobFileStore) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(b.dir, name)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		b.logger.Err(err).Str("func", "*blobFileStore.Save").Str("name", name).Msg("error writing snapshot file")
		return fmt.Errorf("error writing snapshot file: %w", err)
	}

	if err := os.Rename(tmp, target); err != nil {
		b.logger.Err(err).Str("func", "*blobFileStore.Save").Str("name", name).Msg("error committing snapshot file")
		// leave no half-written temporary behind
		_ = os.Remove(tmp)
		return fmt.Errorf("error committing snapshot file: %w", err)
	}

	return nil
}

// Load reads the snapshot stored under name. A missing file returns
// (nil, nil); a file larger than maxSize returns [ErrSnapshotTooLarge]
// without reading it.
func (b *blobFileStore) Load(ctx context.Context, name string, maxSize int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := filepath.Join(b.dir, name)

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		b.logger.Err(err).Str("func", "*blobFileStore.Load").Str("name", name).Msg("error stating snapshot file")
		return nil, fmt.Errorf("error stating snapshot file: %w", err)
	}
	if maxSize > 0 && info.Size() > maxSize {
		b.logger.Error().Str("func", "*blobFileStore.Load").Str("name", name).Int64("size", info.Size()).Msg("snapshot exceeds size limit")
		return nil, ErrSnapshotTooLarge
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		b.logger.Err(err).Str("func", "*blobFileStore.Load").Str("name", name).Msg("error reading snapshot file")
		return nil, fmt.Errorf("error reading snapshot file: %w", err)
	}

	return data, nil
}

// Exists reports whether a snapshot with the given name is present.
func (b *blobFileStore) Exists(ctx context.Context, name string) bool {
	if ctx.Err() != nil {
		return false
	}

	_, err := os.Stat(filepath.Join(b.dir, name))
	return err == nil
}

// Remove deletes the named snapshot. Removing an absent snapshot is not an
// error.
func (b *blobFileStore) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(b.dir, name)); err != nil && !os.IsNotExist(err) {
		b.logger.Err(err).Str("func", "*blobFileStore.Remove").Str("name", name).Msg("error removing snapshot file")
		return fmt.Errorf("error removing snapshot file: %w", err)
	}

	return nil
}
