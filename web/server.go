package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"restaurant-pos/services"
)

// Server exposes the POS operations as a JSON API for the register UI.
// Destructive actions (clear cart, delete item) are confirmed on the client;
// the server executes them unconditionally.
type Server struct {
	billing  *services.Billing
	checkout *services.Checkout
	menu     *services.Menu
	reports  *services.Reports
}

func NewServer(b *services.Billing, c *services.Checkout, m *services.Menu, r *services.Reports) *Server {
	return &Server{billing: b, checkout: c, menu: m, reports: r}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/menu", s.listMenu)
	r.Post("/menu", s.addMenuItem)
	r.Put("/menu/{id}", s.updateMenuItem)
	r.Delete("/menu/{id}", s.deleteMenuItem)

	r.Get("/cart", s.getCart)
	r.Get("/cart/totals", s.cartTotals)
	r.Post("/cart/items", s.addCartItem)
	r.Patch("/cart/items/{id}", s.updateCartItem)
	r.Delete("/cart/items/{id}", s.removeCartItem)
	r.Delete("/cart", s.clearCart)

	r.Post("/checkout", s.completePayment)
	r.Get("/reports/{month}", s.monthlyReport)

	return r
}
