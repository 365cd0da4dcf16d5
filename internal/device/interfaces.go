// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import "context"

// CardReader yields raw card identifiers as they are scanned.
type CardReader interface {
	// ReadUID blocks until the next scan, ctx cancellation, or the end of
	// the input stream ([io.EOF]). The returned identifier is raw; callers
	// normalize it.
	ReadUID(ctx context.Context) (string, error)
}
