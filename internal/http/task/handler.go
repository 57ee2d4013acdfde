package task

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jgrattan/fieldhand/internal/task"
)

type Handler struct {
	svc *task.Service
}

func NewHandler(svc *task.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/upcoming", h.upcoming)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/complete", h.complete)
}

type taskResponse struct {
	ID          int64     `json:"id"`
	FarmID      int64     `json:"farm_id"`
	CropID      int64     `json:"crop_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"due_date"`
	Completed   bool      `json:"completed"`
}

func toResponse(t *task.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		FarmID:      t.FarmID,
		CropID:      t.CropID,
		Title:       t.Title,
		Description: t.Description,
		Category:    string(t.Category),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Completed:   t.Completed,
	}
}

func toResponseList(tasks []*task.Task) []taskResponse {
	resp := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = toResponse(t)
	}

	return resp
}

type createTaskRequest struct {
	FarmID      int64         `json:"farm_id"`
	CropID      int64         `json:"crop_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    task.Category `json:"category"`
	Priority    task.Priority `json:"priority"`
	DueDate     time.Time     `json:"due_date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.FarmID == 0 {
		http.Error(w, "title and farm_id are required", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), task.CreateParams{
		FarmID:      req.FarmID,
		CropID:      req.CropID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// list returns all tasks, or a single farm's tasks when farm_id is set.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		tasks []*task.Task
		err   error
	)

	if s := r.URL.Query().Get("farm_id"); s != "" {
		farmID, parseErr := strconv.ParseInt(s, 10, 64)
		if parseErr != nil {
			http.Error(w, "invalid farm_id", http.StatusBadRequest)
			return
		}

		tasks, err = h.svc.ListByFarm(r.Context(), farmID)
	} else {
		tasks, err = h.svc.List(r.Context())
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(tasks)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upcoming(w http.ResponseWriter, r *http.Request) {
	days := 7
	if s := r.URL.Query().Get("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}

		days = n
	}

	tasks, err := h.svc.Upcoming(r.Context(), days)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(tasks)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTaskRequest struct {
	FarmID      *int64         `json:"farm_id,omitempty"`
	CropID      *int64         `json:"crop_id,omitempty"`
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *task.Category `json:"category,omitempty"`
	Priority    *task.Priority `json:"priority,omitempty"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	Completed   *bool          `json:"completed,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.FarmID != nil {
		t.FarmID = *req.FarmID
	}

	if req.CropID != nil {
		t.CropID = *req.CropID
	}

	if req.Title != nil {
		t.Title = *req.Title
	}

	if req.Description != nil {
		t.Description = *req.Description
	}

	if req.Category != nil {
		t.Category = *req.Category
	}

	if req.Priority != nil {
		t.Priority = *req.Priority
	}

	if req.DueDate != nil {
		t.DueDate = *req.DueDate
	}

	if req.Completed != nil {
		t.Completed = *req.Completed
	}

	if err := h.svc.Update(r.Context(), t); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
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
		if errors.Is(err, task.ErrNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Complete(r.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
