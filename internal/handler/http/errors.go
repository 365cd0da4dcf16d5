// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidUID is returned when a request carries a card UID that is not
// 8 to 20 hexadecimal characters after normalization. Callers can match
// against it with [errors.Is].
var ErrInvalidUID = errors.New("card uid must be 8-20 hex characters")
