package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerGateway struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerGateway constructs an HTTP/REST implementation of
// [ServerGateway]. It normalises and validates the base URL from
// adapterCfg.ServerBaseURL and configures the underlying resty client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerBaseURL is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerGateway(adapterCfg config.DeviceAdapter, logger *logger.Logger) (ServerGateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Status implements [ServerGateway]. It GETs /api/status and decodes the
// registry status. Returns an error if the request fails or the server
// responds with a non-2xx status.
func (h *httpServerGateway) Status(ctx context.Context) (models.ServerStatus, error) {
	var status models.ServerStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/status")
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerStatus{}, err
	}

	return status, nil
}

// FetchSyncPacket implements [ServerGateway]. It GETs /api/sync with an
// If-None-Match header carrying the previous ETag (omitted when etag is
// empty). An HTTP 304 answer short-circuits with notModified=true; any 2xx
// answer is decoded into a [models.SyncPacket] together with the new ETag
// response header.
func (h *httpServerGateway) FetchSyncPacket(ctx context.Context, etag string) (models.SyncPacket, string, bool, error) {
	req := h.client.R().SetContext(ctx)
	if etag != "" {
		req.SetHeader("If-None-Match", etag)
	}

	resp, err := req.Get("/api/sync")
	if err != nil {
		return models.SyncPacket{}, "", false, fmt.Errorf("sync request: %w", err)
	}

	if resp.StatusCode() == http.StatusNotModified {
		return models.SyncPacket{}, etag, true, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncPacket{}, "", false, err
	}

	var packet models.SyncPacket
	if err = json.Unmarshal(resp.Body(), &packet); err != nil {
		return models.SyncPacket{}, "", false, fmt.Errorf("decode sync response: %w", err)
	}

	return packet, resp.Header().Get("ETag"), false, nil
}

// LookupCard implements [ServerGateway]. It GETs /api/cards/{uid}. An HTTP
// 404 is not an error: the card simply does not exist in the registry and
// Exists=false is returned.
func (h *httpServerGateway) LookupCard(ctx context.Context, uid string) (models.CardLookup, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("uid", uid).
		Get("/api/cards/{uid}")
	if err != nil {
		return models.CardLookup{}, fmt.Errorf("card lookup request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.CardLookup{Exists: false}, nil
		}
		return models.CardLookup{}, err
	}

	var lookup models.CardLookup
	if err = json.Unmarshal(resp.Body(), &lookup); err != nil {
		return models.CardLookup{}, fmt.Errorf("decode card lookup response: %w", err)
	}

	return lookup, nil
}

// ReportScan implements [ServerGateway]. It POSTs the presented UID to
// /api/last_scan and decodes the registry's answer, including whether an
// armed enroll mode was applied to this scan.
func (h *httpServerGateway) ReportScan(ctx context.Context, uid string) (models.ScanResult, error) {
	var result models.ScanResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ScanReport{UID: uid}).
		SetResult(&result).
		Post("/api/last_scan")
	if err != nil {
		return models.ScanResult{}, fmt.Errorf("scan report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ScanResult{}, err
	}

	return result, nil
}
