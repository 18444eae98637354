package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"eyewave/backend/services/report-service/internal/analytics"
	"eyewave/backend/services/report-service/internal/platform"
	"eyewave/backend/services/report-service/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeCSV(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// writeServiceError maps service and platform errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, platform.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "platform rejected credentials")
	case errors.Is(err, platform.ErrNotFound), errors.Is(err, service.ErrMemberNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDuplicatePhone):
		writeError(w, http.StatusConflict, "phone number already registered")
	case errors.Is(err, analytics.ErrInvalidRecord):
		writeError(w, http.StatusBadGateway, "platform returned malformed samples")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func queryInt64(r *http.Request, key string) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	return strconv.ParseInt(raw, 10, 64)
}
