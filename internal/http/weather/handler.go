package weather

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jgrattan/fieldhand/internal/weather"
)

type Handler struct {
	svc *weather.Service
}

func NewHandler(svc *weather.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/current", h.current)
	r.Get("/today", h.current)
	r.Get("/forecast", h.forecast)
}

type dayResponse struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	Condition     string    `json:"condition"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity,omitempty"`
	WindSpeed     float64   `json:"wind_speed,omitempty"`
	Precipitation float64   `json:"precipitation,omitempty"`
	FarmingTip    string    `json:"farming_tip,omitempty"`
}

func toResponse(d *weather.Day) dayResponse {
	return dayResponse{
		ID:            d.ID,
		Date:          d.Date,
		Condition:     d.Condition,
		Temperature:   d.Temperature,
		Humidity:      d.Humidity,
		WindSpeed:     d.WindSpeed,
		Precipitation: d.Precipitation,
	}
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Current(r.Context())
	if err != nil {
		if errors.Is(err, weather.ErrNotFound) {
			http.Error(w, "no forecast data", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	resp := toResponse(d)
	resp.FarmingTip = weather.FarmingTip(d.Condition, d.Temperature)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) forecast(w http.ResponseWriter, r *http.Request) {
	days := 4
	if s := r.URL.Query().Get("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}

		days = n
	}

	forecast, err := h.svc.Forecast(r.Context(), days)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]dayResponse, len(forecast))
	for i, d := range forecast {
		resp[i] = toResponse(d)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
