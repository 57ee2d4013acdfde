package farm

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jgrattan/fieldhand/internal/farm"
)

type Handler struct {
	svc *farm.Service
}

func NewHandler(svc *farm.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type farmResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	SizeAcres float64   `json:"size_acres"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(f *farm.Farm) farmResponse {
	return farmResponse{
		ID:        f.ID,
		Name:      f.Name,
		Location:  f.Location,
		SizeAcres: f.SizeAcres,
		CreatedAt: f.CreatedAt,
	}
}

type createFarmRequest struct {
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	SizeAcres float64 `json:"size_acres"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.SizeAcres <= 0 {
		http.Error(w, "name and a positive size_acres are required", http.StatusBadRequest)
		return
	}

	f, err := h.svc.Create(r.Context(), farm.CreateParams{
		Name:      req.Name,
		Location:  req.Location,
		SizeAcres: req.SizeAcres,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	farms, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]farmResponse, len(farms))
	for i, f := range farms {
		resp[i] = toResponse(f)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, farm.ErrNotFound) {
			http.Error(w, "farm not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateFarmRequest struct {
	Name      *string  `json:"name,omitempty"`
	Location  *string  `json:"location,omitempty"`
	SizeAcres *float64 `json:"size_acres,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, farm.ErrNotFound) {
			http.Error(w, "farm not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		f.Name = *req.Name
	}

	if req.Location != nil {
		f.Location = *req.Location
	}

	if req.SizeAcres != nil {
		f.SizeAcres = *req.SizeAcres
	}

	if err := h.svc.Update(r.Context(), f); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, farm.ErrNotFound) {
			http.Error(w, "farm not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
