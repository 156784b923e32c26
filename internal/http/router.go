package httpapi

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/middleware"
)

func NewRouter(h *Handler, logger *log.Logger, corsAllowOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(corsAllowOrigins))
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Logging(logger))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{productId}", h.GetProduct)
		r.Get("/categories", h.ListCategories)
		r.Get("/shipping-methods", h.ListShippingMethods)

		r.Route("/carts", func(r chi.Router) {
			r.Post("/", h.CreateCart)
			r.Route("/{cartId}", func(r chi.Router) {
				r.Get("/", h.GetCart)
				r.Post("/items", h.AddItem)
				r.Put("/items/{productId}", h.UpdateItemQuantity)
				r.Delete("/items/{productId}", h.RemoveItem)
				r.Post("/open", h.OpenCart)
				r.Post("/close", h.CloseCart)
				r.Post("/toggle", h.ToggleCart)
				r.Post("/checkout", h.Checkout)
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
			r.Post("/logout", h.Logout)
			r.Get("/me", h.Me)
		})
	})

	return r
}
