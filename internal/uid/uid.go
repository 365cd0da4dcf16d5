// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package uid canonicalizes credential identifiers read from a card and
// derives their 64-bit fingerprints.
//
// Two raw identifiers that differ only in case or surrounding whitespace
// normalize to the same string and therefore share a fingerprint; this is
// deliberate, since readers and the registry are not consistent about
// either. Distinct normalized identifiers collide only by hash accident,
// negligible at 64 bits for a card population in the hundreds of thousands.
package uid

import "strings"

// FNV-1a 64-bit parameters. These must never change: the server stores the
// same hash in the uid_hash column and both sides compare them.
const (
	fnvOffsetBasis uint64 = 0xcbf29ce484222325
	fnvPrime       uint64 = 0x100000001b3
)

// Normalize trims leading/trailing whitespace and uppercases ASCII letters.
// Only ASCII is folded, matching the reader firmware and the registry's
// uid_hash computation byte for byte. It is a total function; the empty
// string is a valid input.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)

	upper := []byte(trimmed)
	changed := false
	for i, c := range upper {
		if 'a' <= c && c <= 'z' {
			upper[i] = c - 'a' + 'A'
			changed = true
		}
	}
	if !changed {
		return trimmed
	}
	return string(upper)
}

// Fingerprint returns the FNV-1a 64-bit hash of the normalized identifier.
// Deterministic and side-effect free.
func Fingerprint(raw string) uint64 {
	normalized := Normalize(raw)

	hash := fnvOffsetBasis
	for i := 0; i < len(normalized); i++ {
		hash ^= uint64(normalized[i])
		hash *= fnvPrime
	}
	return hash
}
