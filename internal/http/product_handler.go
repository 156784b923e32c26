package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/catalog"
	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/checkout"
)

type productListResponse struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
}

// ListProducts applies the canonical filter/sort query parameters
// (category, q, price, sort) and returns the matching products in order.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q, err := catalog.ParseQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	products := q.Apply(h.catalog.Products())
	writeJSON(w, http.StatusOK, productListResponse{Products: products, Count: len(products)})
}

type productDetailResponse struct {
	catalog.Product
	DiscountPercent int               `json:"discountPercent"`
	Related         []catalog.Product `json:"related"`
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")
	p, ok := h.catalog.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, productDetailResponse{
		Product:         p,
		DiscountPercent: p.DiscountPercent(),
		Related:         h.catalog.Related(p, 4),
	})
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *Handler) ListShippingMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, checkout.ShippingMethods())
}
