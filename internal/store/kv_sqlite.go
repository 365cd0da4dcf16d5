package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

const (
	getScalar = `SELECT value FROM kv
		WHERE namespace = ? AND key = ?;`

	putScalar = `INSERT INTO kv (namespace, key, value)
		VALUES (?, ?, ?)
		ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value;`

	removeScalar = `DELETE FROM kv
		WHERE namespace = ? AND key = ?;`
)

// scalarStore is the SQLite-backed implementation of [ScalarStore]. It keeps
// the device's few durable scalars (sync ETag, accepted max card id) in a
// single namespaced kv table so a scalar write survives power loss without
// a file format of its own.
type scalarStore struct {
	logger *logger.Logger
	db     *DB
}

// NewScalarStore constructs a [ScalarStore] backed by the provided database
// connection and logger.
func NewScalarStore(db *DB, logger *logger.Logger) ScalarStore {
	logger.Debug().Msg("creating scalar store")
	return &scalarStore{
		db:     db,
		logger: logger,
	}
}

// GetString returns the stored value for (namespace, key), or "" with a nil
// error when the key has never been written.
func (s *scalarStore) GetString(ctx context.Context, namespace, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getScalar, namespace, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		s.logger.Err(err).Str("func", "*scalarStore.GetString").Str("key", key).Msg("error: scanning scalar")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return value, nil
}

// PutString stores value under (namespace, key), replacing any previous value.
func (s *scalarStore) PutString(ctx context.Context, namespace, key, value string) error {
	if _, err := s.db.ExecContext(ctx, putScalar, namespace, key, value); err != nil {
		s.logger.Err(err).Str("func", "*scalarStore.PutString").Str("key", key).Msg("error: upserting scalar")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GetUint returns the stored value for (namespace, key) parsed as uint64,
// or 0 with a nil error when the key has never been written.
//
// A value that cannot be parsed is reported as an error rather than
// silently mapped to zero.
func (s *scalarStore) GetUint(ctx context.Context, namespace, key string) (uint64, error) {
	raw, err := s.GetString(ctx, namespace, key)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		s.logger.Err(err).Str("func", "*scalarStore.GetUint").Str("key", key).Msg("error: scalar is not a number")
		return 0, fmt.Errorf("scalar %q is not a number: %w", key, err)
	}

	return value, nil
}

// PutUint stores value under (namespace, key) in decimal form.
func (s *scalarStore) PutUint(ctx context.Context, namespace, key string, value uint64) error {
	return s.PutString(ctx, namespace, key, strconv.FormatUint(value, 10))
}

// Remove deletes (namespace, key). Removing an absent key is not an error.
func (s *scalarStore) Remove(ctx context.Context, namespace, key string) error {
	if _, err := s.db.ExecContext(ctx, removeScalar, namespace, key); err != nil {
		s.logger.Err(err).Str("func", "*scalarStore.Remove").Str("key", key).Msg("error: deleting scalar")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
