// internal/handlers/technicians/technicians.go
package technicians

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpserver "fieldops/internal/http"
	"fieldops/internal/models"
	"fieldops/internal/service"
)

type Handler struct {
	svc *service.TechnicianService
}

func New(svc *service.TechnicianService) *Handler {
	return &Handler{svc: svc}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)) // 1MB
	return dec.Decode(dst)
}

// List returns all technicians, optionally filtered by ?status=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := models.ParseTechnicianStatus(raw)
		if err != nil {
			httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		technicians, err := h.svc.FindByStatus(r.Context(), status)
		if err != nil {
			httpserver.DomainError(w, err, "failed to list technicians")
			return
		}
		httpserver.JSON(w, http.StatusOK, technicians)
		return
	}

	technicians, err := h.svc.FindAll(r.Context())
	if err != nil {
		httpserver.DomainError(w, err, "failed to list technicians")
		return
	}
	httpserver.JSON(w, http.StatusOK, technicians)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var t models.Technician
	if err := decodeJSON(w, r, &t); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if t.Name == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	created, err := h.svc.Create(r.Context(), t)
	if err != nil {
		httpserver.DomainError(w, err, "failed to create technician")
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.FindOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpserver.DomainError(w, err, "failed to get technician")
		return
	}
	httpserver.JSON(w, http.StatusOK, t)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var t models.Technician
	if err := decodeJSON(w, r, &t); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	t.ID = chi.URLParam(r, "id")

	updated, err := h.svc.Update(r.Context(), t)
	if err != nil {
		httpserver.DomainError(w, err, "failed to update technician")
		return
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpserver.DomainError(w, err, "failed to delete technician")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Schedule returns the technician's jobs for one day (?date=YYYY-MM-DD,
// default today).
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	var date *string
	if raw := r.URL.Query().Get("date"); raw != "" {
		date = &raw
	}

	jobs, err := h.svc.GetSchedule(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		httpserver.DomainError(w, err, "failed to get schedule")
		return
	}
	httpserver.JSON(w, http.StatusOK, jobs)
}
