// internal/handlers/timeentries/timeentries.go
package timeentries

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httpserver "fieldops/internal/http"
	"fieldops/internal/service"
)

type Handler struct {
	svc *service.TimeEntryService
}

func New(svc *service.TimeEntryService) *Handler {
	return &Handler{svc: svc}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)) // 1MB
	return dec.Decode(dst)
}

// List requires exactly one of ?technicianId= or ?jobId=. The ?date= filter
// applies only technician-scoped; job queries return full history.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	technicianID := r.URL.Query().Get("technicianId")
	jobID := r.URL.Query().Get("jobId")

	switch {
	case technicianID != "":
		var date *string
		if raw := r.URL.Query().Get("date"); raw != "" {
			date = &raw
		}
		entries, err := h.svc.FindByTechnician(r.Context(), technicianID, date)
		if err != nil {
			httpserver.DomainError(w, err, "failed to list time entries")
			return
		}
		httpserver.JSON(w, http.StatusOK, entries)
	case jobID != "":
		entries, err := h.svc.FindByJob(r.Context(), jobID)
		if err != nil {
			httpserver.DomainError(w, err, "failed to list time entries")
			return
		}
		httpserver.JSON(w, http.StatusOK, entries)
	default:
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "Either technicianId or jobId must be provided",
		})
	}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TechnicianID string  `json:"technicianId"`
		JobID        string  `json:"jobId"`
		Notes        *string `json:"notes"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.TechnicianID == "" || req.JobID == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "technicianId and jobId are required"})
		return
	}

	entry, err := h.svc.Start(r.Context(), req.TechnicianID, req.JobID, req.Notes)
	if err != nil {
		httpserver.DomainError(w, err, "failed to start time entry")
		return
	}
	httpserver.JSON(w, http.StatusCreated, entry)
}

// End closes an entry exactly once; a second call gets 409.
func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BreakMinutes *int    `json:"breakMinutes"`
		Notes        *string `json:"notes"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	entry, err := h.svc.End(r.Context(), chi.URLParam(r, "id"), req.BreakMinutes, req.Notes)
	if err != nil {
		httpserver.DomainError(w, err, "failed to end time entry")
		return
	}
	httpserver.JSON(w, http.StatusOK, entry)
}

// TotalHours sums worked hours over closed entries starting in
// [?start, ?end), both RFC3339.
func (h *Handler) TotalHours(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start: must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid end: must be RFC3339"})
		return
	}

	total, err := h.svc.GetTotalHours(r.Context(), chi.URLParam(r, "technicianId"), start, end)
	if err != nil {
		httpserver.DomainError(w, err, "failed to compute total hours")
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]float64{"totalHours": total})
}
