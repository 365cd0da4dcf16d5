package http

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// sync serves the compact authorization snapshot with a content-derived
// ETag. A request whose If-None-Match matches the current snapshot is
// answered 304 with an empty body, which is the common case for devices
// polling an unchanged registry.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	packet, err := h.registry.BuildSyncPacket(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error building sync packet")
		http.Error(w, "error building sync packet", statusFromError(err))
		return
	}

	body, err := json.Marshal(packet)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error encoding sync packet")
		http.Error(w, "error encoding sync packet", http.StatusInternalServerError)
		return
	}

	etag := fmt.Sprintf("%q", fmt.Sprintf("%x", sha256.Sum256(body))[:16])
	w.Header().Set("ETag", etag)

	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(body); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error writing sync packet")
	}
}
