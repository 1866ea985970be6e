// internal/handlers/jobs/jobs.go
package jobs

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	httpserver "fieldops/internal/http"
	"fieldops/internal/models"
	"fieldops/internal/repo"
	"fieldops/internal/service"
)

type Handler struct {
	svc *service.JobService
}

func New(svc *service.JobService) *Handler {
	return &Handler{svc: svc}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)) // 1MB
	return dec.Decode(dst)
}

type createRequest struct {
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	CustomerName       string    `json:"customerName"`
	CustomerAddress    string    `json:"customerAddress"`
	CustomerPhone      string    `json:"customerPhone"`
	AssignedTechnician string    `json:"assignedTechnician"`
	ScheduledStart     time.Time `json:"scheduledStart"`
	ScheduledEnd       time.Time `json:"scheduledEnd"`
	Priority           string    `json:"priority"`
}

// List returns jobs, optionally filtered by ?technicianId= and ?status=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var f repo.JobFilter
	f.TechnicianID = r.URL.Query().Get("technicianId")
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := models.ParseJobStatus(raw)
		if err != nil {
			httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		f.Status = status
	}

	jobs, err := h.svc.FindAll(r.Context(), f)
	if err != nil {
		httpserver.DomainError(w, err, "failed to list jobs")
		return
	}
	httpserver.JSON(w, http.StatusOK, jobs)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(w, r, &req); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Title == "" || req.AssignedTechnician == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "title and assignedTechnician are required"})
		return
	}

	job := models.Job{
		Title:       req.Title,
		Description: req.Description,
		Customer: models.Customer{
			Name:    req.CustomerName,
			Address: req.CustomerAddress,
			Phone:   req.CustomerPhone,
		},
		AssignedTechnician: req.AssignedTechnician,
		ScheduledStart:     req.ScheduledStart,
		ScheduledEnd:       req.ScheduledEnd,
	}
	if req.Priority != "" {
		priority, err := models.ParsePriority(req.Priority)
		if err != nil {
			httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		job.Priority = priority
	}

	created, err := h.svc.Create(r.Context(), job)
	if err != nil {
		httpserver.DomainError(w, err, "failed to create job")
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.svc.FindOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpserver.DomainError(w, err, "failed to get job")
		return
	}
	httpserver.JSON(w, http.StatusOK, job)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	if err := decodeJSON(w, r, &job); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	job.ID = chi.URLParam(r, "id")

	updated, err := h.svc.Update(r.Context(), job)
	if err != nil {
		httpserver.DomainError(w, err, "failed to update job")
		return
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpserver.DomainError(w, err, "failed to delete job")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus transitions a job; actualStart/actualEnd are stamped on the
// first in_progress/completed transition only.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	status, err := models.ParseJobStatus(req.Status)
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	job, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		httpserver.DomainError(w, err, "failed to update job status")
		return
	}
	httpserver.JSON(w, http.StatusOK, job)
}

// AddNotes overwrites the job's work notes.
func (h *Handler) AddNotes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.svc.AddWorkNotes(r.Context(), id, req.Notes); err != nil {
		httpserver.DomainError(w, err, "failed to add work notes")
		return
	}
	job, err := h.svc.FindOne(r.Context(), id)
	if err != nil {
		httpserver.DomainError(w, err, "failed to get job")
		return
	}
	httpserver.JSON(w, http.StatusOK, job)
}

// RecordAssetUsage accumulates asset usage for a job; ?quantity= defaults
// to 1.
func (h *Handler) RecordAssetUsage(w http.ResponseWriter, r *http.Request) {
	quantity := 1
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid quantity"})
			return
		}
		quantity = n
	}

	jobID := chi.URLParam(r, "id")
	assetID := chi.URLParam(r, "assetId")
	if err := h.svc.AddAssetUsage(r.Context(), jobID, assetID, quantity); err != nil {
		httpserver.DomainError(w, err, "failed to record asset usage")
		return
	}
	job, err := h.svc.FindOne(r.Context(), jobID)
	if err != nil {
		httpserver.DomainError(w, err, "failed to get job")
		return
	}
	httpserver.JSON(w, http.StatusOK, job)
}
