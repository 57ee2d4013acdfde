package export

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jgrattan/fieldhand/internal/export"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

type Handler struct {
	exportSvc *export.Service
	txSvc     *transaction.Service
	outputDir string
}

func NewHandler(exportSvc *export.Service, txSvc *transaction.Service, outputDir string) *Handler {
	return &Handler{exportSvc: exportSvc, txSvc: txSvc, outputDir: outputDir}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.exportCSV)
	r.Get("/report", h.report)
}

type exportResponse struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	filters := transaction.Filters{
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
	}

	path, count, err := h.exportSvc.Export(r.Context(), filters, h.outputDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(exportResponse{Path: path, Count: count}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	summary, err := h.txSvc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := w.Write([]byte(h.exportSvc.GenerateReport(summary))); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
