package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCardNotFound is returned when a query targets a card UID that does
	// not exist in the registry, or that exists only as a soft-deleted
	// record.
	ErrCardNotFound = errors.New("card was not found")

	// ErrCardIDExhausted is returned when the monotonic card id counter row
	// is missing or cannot be advanced, so no new bitset position can be
	// assigned.
	ErrCardIDExhausted = errors.New("card id counter unavailable")

	// ErrSnapshotTooLarge is returned by [BlobStore.Load] when a snapshot
	// file on disk exceeds the caller-supplied size cap. A snapshot that
	// outgrew its cap is treated as corrupt rather than loaded partially.
	ErrSnapshotTooLarge = errors.New("snapshot exceeds size limit")

	// ErrSnapshotCorrupted is returned by [DecodeHashSets] when a snapshot's
	// declared entry counts do not match its byte length.
	ErrSnapshotCorrupted = errors.New("snapshot is corrupted")
)
