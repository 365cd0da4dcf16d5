package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidUID:                http.StatusBadRequest,
	service.ErrInvalidEnrollMode: http.StatusBadRequest,

	store.ErrCardNotFound:    http.StatusNotFound,
	store.ErrCardIDExhausted: http.StatusInsufficientStorage,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
