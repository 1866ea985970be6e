// internal/handlers/assets/assets.go
package assets

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpserver "fieldops/internal/http"
	"fieldops/internal/models"
	"fieldops/internal/service"
)

type Handler struct {
	svc *service.AssetService
}

func New(svc *service.AssetService) *Handler {
	return &Handler{svc: svc}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)) // 1MB
	return dec.Decode(dst)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.FindAll(r.Context())
	if err != nil {
		httpserver.DomainError(w, err, "failed to list assets")
		return
	}
	httpserver.JSON(w, http.StatusOK, assets)
}

// ListAvailable returns assets with quantity > 0, optionally filtered by
// ?type=. The filter is passed through unvalidated; unknown types match
// nothing.
func (h *Handler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	var typ *models.AssetType
	if raw := r.URL.Query().Get("type"); raw != "" {
		at := models.AssetType(raw)
		typ = &at
	}

	assets, err := h.svc.FindAvailable(r.Context(), typ)
	if err != nil {
		httpserver.DomainError(w, err, "failed to list available assets")
		return
	}
	httpserver.JSON(w, http.StatusOK, assets)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Asset
	if err := decodeJSON(w, r, &a); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if a.Name == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if _, err := models.ParseAssetType(string(a.Type)); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	created, err := h.svc.Create(r.Context(), a)
	if err != nil {
		httpserver.DomainError(w, err, "failed to create asset")
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.FindOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpserver.DomainError(w, err, "failed to get asset")
		return
	}
	httpserver.JSON(w, http.StatusOK, a)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var a models.Asset
	if err := decodeJSON(w, r, &a); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	a.ID = chi.URLParam(r, "id")

	updated, err := h.svc.Update(r.Context(), a)
	if err != nil {
		httpserver.DomainError(w, err, "failed to update asset")
		return
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpserver.DomainError(w, err, "failed to delete asset")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TechnicianID string `json:"technicianId"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.TechnicianID == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "technicianId is required"})
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.svc.AssignToTechnician(r.Context(), id, req.TechnicianID); err != nil {
		httpserver.DomainError(w, err, "failed to assign asset")
		return
	}
	a, err := h.svc.FindOne(r.Context(), id)
	if err != nil {
		httpserver.DomainError(w, err, "failed to get asset")
		return
	}
	httpserver.JSON(w, http.StatusOK, a)
}

func (h *Handler) Unassign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Unassign(r.Context(), id); err != nil {
		httpserver.DomainError(w, err, "failed to unassign asset")
		return
	}
	a, err := h.svc.FindOne(r.Context(), id)
	if err != nil {
		httpserver.DomainError(w, err, "failed to get asset")
		return
	}
	httpserver.JSON(w, http.StatusOK, a)
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Quantity < 0 {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "quantity must be non-negative"})
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.svc.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		httpserver.DomainError(w, err, "failed to update quantity")
		return
	}
	a, err := h.svc.FindOne(r.Context(), id)
	if err != nil {
		httpserver.DomainError(w, err, "failed to get asset")
		return
	}
	httpserver.JSON(w, http.StatusOK, a)
}
