package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.registerCard").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	normalized, err := validUID(req.UID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerCard").Msg("invalid card uid")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	req.UID = normalized

	card, err := h.registry.RegisterCard(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerCard").Msg("error registering card")
		http.Error(w, "error registering card", statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, card)
}

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cards, err := h.registry.ListCards(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCards").Msg("error listing cards")
		http.Error(w, "error listing cards", statusFromError(err))
		return
	}
	if cards == nil {
		cards = []models.Card{}
	}

	writeJSON(w, r, http.StatusOK, cards)
}

// lookupCard answers the device's live per-card query. An unknown card is a
// regular outcome, reported as 404 with an {exists:false} body.
func (h *Handler) lookupCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	normalized, err := validUID(chi.URLParam(r, "uid"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.lookupCard").Msg("invalid card uid")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	lookup, err := h.registry.LookupCard(r.Context(), normalized)
	if err != nil {
		log.Err(err).Str("func", "*Handler.lookupCard").Msg("error looking up card")
		http.Error(w, "error looking up card", statusFromError(err))
		return
	}

	status := http.StatusOK
	if !lookup.Exists {
		status = http.StatusNotFound
	}
	writeJSON(w, r, status, lookup)
}

func (h *Handler) setAuthorized(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	normalized, err := validUID(chi.URLParam(r, "uid"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.setAuthorized").Msg("invalid card uid")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	var req struct {
		Authorized *bool `json:"authorized"`
	}
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil || req.Authorized == nil {
		log.Err(err).Str("func", "*Handler.setAuthorized").Msg("Invalid JSON was passed")
		http.Error(w, "body must carry an `authorized` flag", http.StatusBadRequest)
		return
	}

	card, err := h.registry.SetAuthorized(r.Context(), normalized, *req.Authorized)
	if err != nil {
		log.Err(err).Str("func", "*Handler.setAuthorized").Msg("error updating card")
		http.Error(w, "error updating card", statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, card)
}

func (h *Handler) removeCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	normalized, err := validUID(chi.URLParam(r, "uid"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.removeCard").Msg("invalid card uid")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err = h.registry.RemoveCard(r.Context(), normalized); err != nil {
		log.Err(err).Str("func", "*Handler.removeCard").Msg("error removing card")
		http.Error(w, "error removing card", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
