package httpx

import (
	"encoding/json"
	"net/http"

	"gamehub/internal/apperr"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMsg(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeError maps the error taxonomy onto HTTP statuses. Clients only ever
// see the taxonomy message, never a driver error.
func writeError(w http.ResponseWriter, err error) {
	writeErrorMsg(w, statusOf(apperr.KindOf(err)), apperr.Message(err))
}

func statusOf(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
