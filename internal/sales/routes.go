package sales

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.History)
	r.Get("/catalog", h.Catalog)
	r.Post("/carts", h.CreateCart)
	r.Get("/carts/{token}", h.ShowCart)
	r.Post("/carts/{token}/items", h.AddItem)
	r.Put("/carts/{token}/items/{productID}", h.SetQty)
	r.Delete("/carts/{token}/items/{productID}", h.RemoveItem)
	r.Put("/carts/{token}/discount", h.SetDiscount)
	r.Post("/carts/{token}/checkout", h.Checkout)
}
