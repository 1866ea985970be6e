// internal/http/respond.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"fieldops/internal/models"
	"fieldops/internal/service"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// DomainError writes an error response: known domain errors get their own
// status, anything else goes through the pg error mapping with the fallback
// message.
func DomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrTechnicianNotFound),
		errors.Is(err, models.ErrJobNotFound),
		errors.Is(err, models.ErrAssetNotFound),
		errors.Is(err, models.ErrTimeEntryNotFound):
		JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrTimeEntryClosed):
		JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDate):
		JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		status, msg := PGErrorMessage(err, fallback)
		JSON(w, status, map[string]string{"error": msg})
	}
}
