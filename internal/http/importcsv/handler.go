package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jgrattan/fieldhand/internal/importer"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

type Handler struct {
	importSvc *importer.Service
}

func NewHandler(importSvc *importer.Service) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedTransaction struct {
	ID          int64            `json:"id"`
	FarmID      int64            `json:"farm_id"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	Amount      int64            `json:"amount"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
}

type importResponse struct {
	Imported     int                   `json:"imported"`
	Skipped      int                   `json:"skipped"`
	Transactions []importedTransaction `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatLedger
	}

	var defaultFarmID int64

	if s := r.FormValue("farm_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "invalid farm_id", http.StatusBadRequest)
			return
		}

		defaultFarmID = id
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	entries, err := h.importSvc.Parse(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.importSvc.Import(r.Context(), entries, defaultFarmID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importResponse{
		Imported:     len(result.Imported),
		Skipped:      len(result.Skipped),
		Transactions: make([]importedTransaction, 0, len(result.Imported)),
	}

	for _, tx := range result.Imported {
		resp.Transactions = append(resp.Transactions, importedTransaction{
			ID:          tx.ID,
			FarmID:      tx.FarmID,
			Type:        tx.Type,
			Category:    tx.Category,
			Amount:      tx.Amount,
			Description: tx.Description,
			Date:        tx.Date,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
