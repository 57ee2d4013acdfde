package crop

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jgrattan/fieldhand/internal/crop"
)

type Handler struct {
	svc *crop.Service
}

func NewHandler(svc *crop.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/harvest", h.harvest)
}

type cropResponse struct {
	ID              int64     `json:"id"`
	FarmID          int64     `json:"farm_id"`
	Name            string    `json:"name"`
	Variety         string    `json:"variety,omitempty"`
	PlantedDate     time.Time `json:"planted_date"`
	ExpectedHarvest time.Time `json:"expected_harvest"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
}

func toResponse(c *crop.Crop) cropResponse {
	return cropResponse{
		ID:              c.ID,
		FarmID:          c.FarmID,
		Name:            c.Name,
		Variety:         c.Variety,
		PlantedDate:     c.PlantedDate,
		ExpectedHarvest: c.ExpectedHarvest,
		Status:          string(c.Status),
		Notes:           c.Notes,
	}
}

func toResponseList(crops []*crop.Crop) []cropResponse {
	resp := make([]cropResponse, len(crops))
	for i, c := range crops {
		resp[i] = toResponse(c)
	}

	return resp
}

type createCropRequest struct {
	FarmID          int64       `json:"farm_id"`
	Name            string      `json:"name"`
	Variety         string      `json:"variety"`
	PlantedDate     time.Time   `json:"planted_date"`
	ExpectedHarvest time.Time   `json:"expected_harvest"`
	Status          crop.Status `json:"status"`
	Notes           string      `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.FarmID == 0 {
		http.Error(w, "name and farm_id are required", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), crop.CreateParams{
		FarmID:          req.FarmID,
		Name:            req.Name,
		Variety:         req.Variety,
		PlantedDate:     req.PlantedDate,
		ExpectedHarvest: req.ExpectedHarvest,
		Status:          req.Status,
		Notes:           req.Notes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// list returns all crops, or a single farm's crops when farm_id is set.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		crops []*crop.Crop
		err   error
	)

	if s := r.URL.Query().Get("farm_id"); s != "" {
		farmID, parseErr := strconv.ParseInt(s, 10, 64)
		if parseErr != nil {
			http.Error(w, "invalid farm_id", http.StatusBadRequest)
			return
		}

		crops, err = h.svc.ListByFarm(r.Context(), farmID)
	} else {
		crops, err = h.svc.List(r.Context())
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(crops)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, crop.ErrNotFound) {
			http.Error(w, "crop not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCropRequest struct {
	FarmID          *int64       `json:"farm_id,omitempty"`
	Name            *string      `json:"name,omitempty"`
	Variety         *string      `json:"variety,omitempty"`
	PlantedDate     *time.Time   `json:"planted_date,omitempty"`
	ExpectedHarvest *time.Time   `json:"expected_harvest,omitempty"`
	Status          *crop.Status `json:"status,omitempty"`
	Notes           *string      `json:"notes,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, crop.ErrNotFound) {
			http.Error(w, "crop not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.FarmID != nil {
		c.FarmID = *req.FarmID
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if req.Variety != nil {
		c.Variety = *req.Variety
	}

	if req.PlantedDate != nil {
		c.PlantedDate = *req.PlantedDate
	}

	if req.ExpectedHarvest != nil {
		c.ExpectedHarvest = *req.ExpectedHarvest
	}

	if req.Status != nil {
		c.Status = *req.Status
	}

	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := h.svc.Update(r.Context(), c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
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
		if errors.Is(err, crop.ErrNotFound) {
			http.Error(w, "crop not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) harvest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Harvest(r.Context(), id)
	if err != nil {
		if errors.Is(err, crop.ErrNotFound) {
			http.Error(w, "crop not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
