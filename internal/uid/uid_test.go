// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "already canonical", raw: "04A1B2C3", want: "04A1B2C3"},
		{name: "lowercase hex", raw: "04a1b2c3", want: "04A1B2C3"},
		{name: "surrounding whitespace", raw: "  04a1b2c3\t", want: "04A1B2C3"},
		{name: "mixed case", raw: "DeAdBeEf", want: "DEADBEEF"},
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: " \t\n ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

// Regression vectors computed with an independent FNV-1a 64 implementation
// over the normalized byte sequence.
func TestFingerprint_KnownVectors(t *testing.T) {
	tests := []struct {
		raw  string
		want uint64
	}{
		{raw: "04a1b2c3", want: 0xc551a56c77806699},
		{raw: "04A1B2C3", want: 0xc551a56c77806699},
		{raw: " 04A1B2C3 ", want: 0xc551a56c77806699},
		{raw: "", want: 0xcbf29ce484222325}, // offset basis: hash of empty input
		{raw: "a", want: 0xaf63fc4c860222ec},
		{raw: "DEADBEEF", want: 0x61c8dee34d5403d5},
		{raw: "cafebabe1234", want: 0xa2e2fcbf2a60ea34},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Fingerprint(tt.raw))
		})
	}
}

func TestFingerprint_CaseAndWhitespaceInsensitive(t *testing.T) {
	assert.Equal(t, Fingerprint("04a1b2c3"), Fingerprint("04A1B2C3"))
	assert.Equal(t, Fingerprint("  deadbeef"), Fingerprint("DEADBEEF  "))
	assert.NotEqual(t, Fingerprint("04A1B2C3"), Fingerprint("04A1B2C4"))
}
