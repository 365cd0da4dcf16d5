package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// Storages groups the server-side storage repositories into a single value
// that can be passed around the service layer.
type Storages struct {
	// CardRepository is the PostgreSQL-backed card registry.
	CardRepository CardRepository
}

// NewServerStorages initialises the server storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a PostgreSQL connection to the DSN specified in cfg.DB.DSN.
//  2. Runs pending schema migrations via [DB.MigrateServer].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [CardRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewServerStorages(cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigrateServer(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		CardRepository: NewCardRepository(db, logger),
	}, nil
}

// DeviceStorages groups the device-side persistence backends: the SQLite
// scalar store and the snapshot file store.
type DeviceStorages struct {
	// Scalars holds the durable scalars (sync ETag, accepted max card id).
	Scalars ScalarStore
	// Blobs holds the binary snapshots (bitset bytes, hash-set dump).
	Blobs BlobStore
}

// NewDeviceStorages initialises the device storage layer: it opens (and, if
// needed, creates) the local SQLite file, applies the kv schema, and roots
// the snapshot file store at the configured data directory.
func NewDeviceStorages(cfg config.DeviceStorage, logger *logger.Logger) (*DeviceStorages, error) {
	logger.Info().Msg("creating device storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateDevice(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewBlobFileStore(cfg.Files.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("snapshot store error: %w", err)
	}

	return &DeviceStorages{
		Scalars: NewScalarStore(db, logger),
		Blobs:   blobs,
	}, nil
}
