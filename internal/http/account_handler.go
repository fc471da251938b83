package http

import (
	"encoding/json"
	"net/http"

	"github.com/Mohamed-Amiir/RiseJourny/internal/accounts"
)

type AccountHandler struct {
	accounts accounts.Store
}

func NewAccountHandler(store accounts.Store) *AccountHandler {
	return &AccountHandler{accounts: store}
}

type AccountResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

type CreditRequestDTO struct {
	Amount float64 `json:"amount"`
}

// GET /api/v1/account
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID := getCustomerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer identity")
		return
	}

	account, err := h.accounts.Get(customerID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, AccountResponse{
		ID:      account.ID,
		Name:    account.Name,
		Balance: account.Balance,
	})
}

// POST /api/v1/account/credit
func (h *AccountHandler) Credit(w http.ResponseWriter, r *http.Request) {
	customerID := getCustomerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer identity")
		return
	}

	var req CreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	account, err := h.accounts.Get(customerID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	if err := account.Credit(req.Amount); err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, AccountResponse{
		ID:      account.ID,
		Name:    account.Name,
		Balance: account.Balance,
	})
}
