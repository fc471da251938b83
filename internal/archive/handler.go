package archive

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
	"github.com/go-chi/chi/v5"
)

// Handler serves archived receipts back over JSON.
type Handler struct {
	repo    Repository
	timeout time.Duration
}

func NewHandler(repo Repository, timeout time.Duration) *Handler {
	return &Handler{repo: repo, timeout: timeout}
}

type ReceiptResponseDTO struct {
	ID          string               `json:"receipt_id"`
	CustomerID  string               `json:"customer_id"`
	Subtotal    float64              `json:"subtotal"`
	ShippingFee float64              `json:"shipping_fee"`
	Total       float64              `json:"total"`
	Lines       []domain.ReceiptLine `json:"lines"`
	CompletedAt string               `json:"completed_at"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// GET /api/v1/receipts?customer_id=...
func (h *Handler) ListReceipts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := r.URL.Query().Get("customer_id")
	if customerID == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "customer_id is required", Code: "missing_customer_id"})
		return
	}

	records, err := h.repo.ListReceiptsByCustomer(ctx, customerID)
	if err != nil {
		log.Printf("list receipts for %s: %v", customerID, err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "internal_error"})
		return
	}

	// Must serialise as [], not null
	response := make([]ReceiptResponseDTO, 0, len(records))
	for _, record := range records {
		response = append(response, convertRecord(record))
	}
	respondJSON(w, http.StatusOK, response)
}

// GET /api/v1/receipts/{receipt_id}
func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	receiptID := chi.URLParam(r, "receipt_id")
	if receiptID == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "receipt_id is required", Code: "missing_receipt_id"})
		return
	}

	record, err := h.repo.GetReceiptByID(ctx, receiptID)
	if errors.Is(err, ErrReceiptNotFound) {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "receipt not found", Code: "not_found"})
		return
	}
	if err != nil {
		log.Printf("get receipt %s: %v", receiptID, err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "internal_error"})
		return
	}

	respondJSON(w, http.StatusOK, convertRecord(record))
}

func convertRecord(record *ReceiptRecord) ReceiptResponseDTO {
	lines := record.Lines
	if lines == nil {
		lines = []domain.ReceiptLine{}
	}
	return ReceiptResponseDTO{
		ID:          record.ID,
		CustomerID:  record.CustomerID,
		Subtotal:    record.Subtotal,
		ShippingFee: record.ShippingFee,
		Total:       record.Total,
		Lines:       lines,
		CompletedAt: record.CompletedAt.UTC().Format(time.RFC3339Nano),
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
