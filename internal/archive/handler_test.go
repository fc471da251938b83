package archive

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(repo Repository) (*Handler, *chi.Mux) {
	h := NewHandler(repo, 5*time.Second)
	r := chi.NewRouter()
	r.Get("/receipts", h.ListReceipts)
	r.Get("/receipts/{receipt_id}", h.GetReceipt)
	return h, r
}

func storedReceipt(id, customerID string) *ReceiptRecord {
	return &ReceiptRecord{
		ID:          id,
		CustomerID:  customerID,
		Subtotal:    600.0,
		ShippingFee: 22.5,
		Total:       622.5,
		Lines: []domain.ReceiptLine{
			{ProductID: 3, ProductName: "Smart TV", Quantity: 1, LineTotal: 500.0},
		},
		CompletedAt: time.Now().UTC(),
	}
}

func TestListReceipts(t *testing.T) {
	repo := &MockRepository{Created: []*ReceiptRecord{
		storedReceipt("receipt-1", "cust-1"),
		storedReceipt("receipt-2", "cust-2"),
	}}
	_, router := newTestHandler(repo)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/receipts?customer_id=cust-1", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response []ReceiptResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, "receipt-1", response[0].ID)
	assert.Equal(t, 622.5, response[0].Total)
}

func TestListReceipts_EmptyIsArrayNotNull(t *testing.T) {
	_, router := newTestHandler(&MockRepository{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/receipts?customer_id=nobody", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestListReceipts_MissingCustomerID(t *testing.T) {
	_, router := newTestHandler(&MockRepository{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/receipts", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetReceipt(t *testing.T) {
	repo := &MockRepository{Created: []*ReceiptRecord{storedReceipt("receipt-1", "cust-1")}}
	_, router := newTestHandler(repo)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/receipts/receipt-1", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response ReceiptResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "receipt-1", response.ID)
	assert.Equal(t, "cust-1", response.CustomerID)
	require.Len(t, response.Lines, 1)
	assert.Equal(t, "Smart TV", response.Lines[0].ProductName)
}

func TestGetReceipt_NotFound(t *testing.T) {
	_, router := newTestHandler(&MockRepository{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/receipts/missing", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
