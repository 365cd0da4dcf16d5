package service

import "errors"

// Sentinel errors reported by the sync path. They describe why a sync did
// not run rather than a fault: callers treat them all as "try again later".
var (
	// ErrServerNotConfigured is returned when the device runs without a
	// registry base URL (pure offline deployment).
	ErrServerNotConfigured = errors.New("registry server is not configured")

	// ErrServerDown is returned when the reachability probe reports the
	// server unreachable and the backoff window has not elapsed yet.
	ErrServerDown = errors.New("registry server is unreachable")

	// ErrCapacityExceeded is returned when a sync proposes more cards than
	// the fixed bitset arena can hold. The local cardinality collapses to
	// empty rather than keeping a stale snapshot.
	ErrCapacityExceeded = errors.New("sync cardinality exceeds bitset capacity")
)

// ErrInvalidEnrollMode is returned by the registry when an enroll request
// names a mode other than grant, revoke, or none.
var ErrInvalidEnrollMode = errors.New("invalid enroll mode")
