package store

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CardRepository is the server-side card registry. Cards are never removed
// physically: revocation flips the authorized flag and deletion sets a
// tombstone, so an assigned card id (bitset position) is never reused.
type CardRepository interface {
	// RegisterCard inserts a new card or revives/updates an existing one.
	// A fresh card receives the next card id from the monotonic counter;
	// an existing card keeps its id and added_at.
	RegisterCard(ctx context.Context, card models.Card) (models.Card, error)
	// GetCard returns the live (non-deleted) card with the given UID,
	// or ErrCardNotFound.
	GetCard(ctx context.Context, uid string) (models.Card, error)
	// ListCards returns all live cards ordered by card id.
	ListCards(ctx context.Context) ([]models.Card, error)
	// SetAuthorized flips the authorized flag of a live card.
	SetAuthorized(ctx context.Context, uid string, authorized bool) (models.Card, error)
	// SoftDeleteCard tombstones a live card, keeping its card id reserved.
	SoftDeleteCard(ctx context.Context, uid string, deletedAt int64) error
	// MaxCardID returns the highest card id ever assigned, 0 when the
	// registry has never assigned one.
	MaxCardID(ctx context.Context) (int64, error)
	// AuthorizedCardIDs returns the card ids of all live authorized cards.
	AuthorizedCardIDs(ctx context.Context) ([]int64, error)
	// PartitionedUIDs returns the UIDs of live cards split by their
	// authorized flag.
	PartitionedUIDs(ctx context.Context) (allow []string, deny []string, err error)
}

// ScalarStore is the device-side durable key-value store for small scalars
// such as the sync ETag and the last accepted max card id.
//
// Absent keys are not an error: Get methods return the zero value and nil.
type ScalarStore interface {
	GetString(ctx context.Context, namespace, key string) (string, error)
	PutString(ctx context.Context, namespace, key, value string) error
	GetUint(ctx context.Context, namespace, key string) (uint64, error)
	PutUint(ctx context.Context, namespace, key string, value uint64) error
	Remove(ctx context.Context, namespace, key string) error
}

// BlobStore persists the device's binary snapshots (bitset bytes, hash-set
// dump). Save must be atomic: a crash mid-write leaves the previous snapshot
// intact.
//
// Load returns (nil, nil) when the named blob does not exist.
type BlobStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string, maxSize int64) ([]byte, error)
	Exists(ctx context.Context, name string) bool
	Remove(ctx context.Context, name string) error
}

// Durable scalar namespace and key names shared by the device services.
const (
	ScalarNamespaceAuth = "auth"

	KeyBitsetETag = "bitset_etag"
	KeyMaxCardID  = "max_id"
)

// Snapshot blob names used by the device services.
const (
	BitsetSnapshotName   = "bits.bin"
	HashSetsSnapshotName = "allow_deny.bin"
)
