package http

import "net/http"

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.registry.Status())
}
