package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

func (h *Handler) lastScan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var report models.ScanReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		log.Err(err).Str("func", "*Handler.lastScan").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	normalized, err := validUID(report.UID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.lastScan").Msg("invalid card uid")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result, err := h.registry.RecordScan(r.Context(), normalized)
	if err != nil {
		log.Err(err).Str("func", "*Handler.lastScan").Msg("error recording scan")
		http.Error(w, "error recording scan", statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.enroll").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.registry.ArmEnroll(req.Mode); err != nil {
		log.Err(err).Str("func", "*Handler.enroll").Msg("error arming enroll mode")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, h.registry.Status())
}
