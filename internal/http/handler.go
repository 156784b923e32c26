package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/auth"
	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/cart"
	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/catalog"
	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/checkout"
)

// Handler is the storefront BFF surface. The catalog is read-only; carts and
// auth sessions are per-client in-memory state.
type Handler struct {
	catalog  *catalog.Catalog
	carts    *cart.Store
	auth     *auth.Service
	checkout *checkout.Service
}

func NewHandler(c *catalog.Catalog, carts *cart.Store, authSvc *auth.Service, checkoutSvc *checkout.Service) *Handler {
	return &Handler{catalog: c, carts: carts, auth: authSvc, checkout: checkoutSvc}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}
