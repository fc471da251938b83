package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Mohamed-Amiir/RiseJourny/internal/accounts"
	"github.com/Mohamed-Amiir/RiseJourny/internal/catalog"
	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleDomainError maps the checkout error taxonomy to HTTP statuses.
// Every failure here is recoverable and caller-reported, never fatal.
func handleDomainError(w http.ResponseWriter, err error) {
	var httpStatus int
	var code string

	switch {
	case errors.Is(err, domain.ErrInvalidValue):
		httpStatus = http.StatusBadRequest
		code = "invalid_value"
	case errors.Is(err, domain.ErrEmptyCart):
		httpStatus = http.StatusBadRequest
		code = "empty_cart"
	case errors.Is(err, domain.ErrInsufficientStock):
		httpStatus = http.StatusConflict
		code = "insufficient_stock"
	case errors.Is(err, domain.ErrExpiredProduct):
		httpStatus = http.StatusConflict
		code = "expired_product"
	case errors.Is(err, domain.ErrInsufficientFunds):
		httpStatus = http.StatusPaymentRequired
		code = "insufficient_funds"
	case errors.Is(err, catalog.ErrProductNotFound):
		httpStatus = http.StatusNotFound
		code = "product_not_found"
	case errors.Is(err, accounts.ErrAccountNotFound):
		httpStatus = http.StatusNotFound
		code = "account_not_found"
	default:
		httpStatus = http.StatusInternalServerError
		code = "internal_error"
	}

	respondError(w, httpStatus, code, err.Error())
}
