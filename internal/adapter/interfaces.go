// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the card registry server.
//
// The primary abstraction is [ServerGateway], which decouples the device
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_gateway_mock.go -package=mock

// ServerGateway defines transport-agnostic communication with the card
// registry server. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package.
type ServerGateway interface {
	// Status fetches the registry status (last scanned UID, enroll mode).
	// The device polls it frequently, so it doubles as the liveness probe:
	// callers bound it with a short context deadline.
	Status(ctx context.Context) (models.ServerStatus, error)

	// FetchSyncPacket performs a conditional GET of the authorization
	// snapshot. etag is the validator from the previous fetch ("" on the
	// first call). When the server answers 304 Not Modified, notModified is
	// true and the packet is empty; otherwise the fresh packet and its new
	// ETag are returned.
	FetchSyncPacket(ctx context.Context, etag string) (packet models.SyncPacket, newETag string, notModified bool, err error)

	// LookupCard queries the registry for a single UID. A missing or
	// deleted card is not an error: it is reported as Exists=false.
	LookupCard(ctx context.Context, uid string) (models.CardLookup, error)

	// ReportScan tells the registry which UID was just presented to the
	// reader. The registry records it as the last scan and, when an enroll
	// mode is armed, applies the pending grant or revoke to this card.
	ReportScan(ctx context.Context, uid string) (models.ScanResult, error)
}
