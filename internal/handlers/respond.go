package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"minisignal/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors to their HTTP status. Anything outside the
// taxonomy becomes an opaque 500 so storage internals never leak.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, apperr.HTTPStatus(appErr.Code), map[string]string{"detail": appErr.Message})
		return
	}
	log.Printf("internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal server error"})
}
