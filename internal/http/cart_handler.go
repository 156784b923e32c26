package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/cart"
	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/checkout"
)

// cartView is the cart payload returned by every cart endpoint: the line
// items plus the derived numbers, recomputed per response.
type cartView struct {
	ID        string          `json:"cartId"`
	Items     []cart.LineItem `json:"items"`
	IsOpen    bool            `json:"isOpen"`
	ItemCount int             `json:"itemCount"`
	Subtotal  float64         `json:"subtotal"`
	Tax       float64         `json:"tax"`
	Total     float64         `json:"total"`
}

func viewOf(id string, c *cart.Cart) cartView {
	return cartView{
		ID:        id,
		Items:     c.Items(),
		IsOpen:    c.IsOpen(),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
		Tax:       c.Tax(),
		Total:     c.Total(),
	}
}

func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	id, c := h.carts.Create()
	writeJSON(w, http.StatusCreated, viewOf(id, c))
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewOf(id, c))
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// AddItem validates the product reference before handing it to the cart
// engine; the engine itself works on pre-validated products.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}

	var body addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, found := h.catalog.ByID(body.ProductID)
	if !found {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	c.AddItem(p, body.Quantity, body.Size, body.Color)
	writeJSON(w, http.StatusOK, viewOf(id, c))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}

	var body updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	c.UpdateQuantity(chi.URLParam(r, "productId"), body.Quantity)
	writeJSON(w, http.StatusOK, viewOf(id, c))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}

	c.RemoveItem(chi.URLParam(r, "productId"))
	writeJSON(w, http.StatusOK, viewOf(id, c))
}

func (h *Handler) OpenCart(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}
	c.Open()
	writeJSON(w, http.StatusOK, viewOf(id, c))
}

func (h *Handler) CloseCart(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}
	c.Close()
	writeJSON(w, http.StatusOK, viewOf(id, c))
}

func (h *Handler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}
	c.Toggle()
	writeJSON(w, http.StatusOK, viewOf(id, c))
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	_, c, ok := h.cartFromPath(w, r)
	if !ok {
		return
	}

	var body checkout.Request
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	conf, err := h.checkout.Process(r.Context(), c, body)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, http.StatusConflict, "cart is empty")
		case errors.Is(err, checkout.ErrUnknownShippingMethod):
			writeError(w, http.StatusBadRequest, "unknown shipping method")
		default:
			writeError(w, http.StatusInternalServerError, "checkout failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, conf)
}

func (h *Handler) cartFromPath(w http.ResponseWriter, r *http.Request) (string, *cart.Cart, bool) {
	id := chi.URLParam(r, "cartId")
	c, ok := h.carts.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found")
		return "", nil, false
	}
	return id, c, true
}
