package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Mohamed-Amiir/RiseJourny/internal/catalog"
	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalog catalog.Store
}

func NewProductHandler(cat catalog.Store) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

type ProductResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Stock      int      `json:"stock"`
	ExpiresAt  *string  `json:"expires_at,omitempty"`
	UnitWeight *float64 `json:"unit_weight,omitempty"`
	Shippable  bool     `json:"shippable"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.List()
	products := make([]ProductResponse, len(all))
	for i, p := range all {
		products[i] = convertProduct(p)
	}
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products})
}

// GET /api/v1/products/{product_id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	product, err := h.catalog.Get(productID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "product_not_found", "product not found")
		return
	}
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, convertProduct(product))
}

func convertProduct(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		UnitWeight: p.UnitWeight,
		Shippable:  p.IsShippable(),
	}
	if p.ExpiresAt != nil {
		expires := p.ExpiresAt.UTC().Format(time.RFC3339)
		resp.ExpiresAt = &expires
	}
	return resp
}
