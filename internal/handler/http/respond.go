package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/uid"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
	}
}

// validUID normalizes a raw card UID and checks it is 8 to 20 hexadecimal
// characters, the range produced by 4 to 10 byte card serial numbers.
func validUID(raw string) (string, error) {
	normalized := uid.Normalize(raw)
	if len(normalized) < 8 || len(normalized) > 20 {
		return "", fmt.Errorf("%w: got %d characters", ErrInvalidUID, len(normalized))
	}
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if ('0' <= c && c <= '9') || ('A' <= c && c <= 'F') {
			continue
		}
		return "", fmt.Errorf("%w: invalid character %q", ErrInvalidUID, c)
	}
	return normalized, nil
}
