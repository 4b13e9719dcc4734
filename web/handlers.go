package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"restaurant-pos/models"
	"restaurant-pos/services"
)

type menuItemRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}

type addCartItemRequest struct {
	ItemID int64 `json:"item_id"`
}

type updateCartItemRequest struct {
	Delta int `json:"delta"`
}

type checkoutRequest struct {
	TaxEnabled bool `json:"tax_enabled"`
}

type cartResponse struct {
	Items  []models.CartLine `json:"items"`
	Totals models.Totals     `json:"totals"`
}

type reportResponse struct {
	models.MonthlyReport
	HasData bool `json:"has_data"`
}

func (s *Server) listMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := s.menu.List(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}
	if menu == nil {
		menu = []models.MenuItem{}
	}
	writeJSON(w, http.StatusOK, menu)
}

func (s *Server) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad json")
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		badRequest(w, "price must be a decimal number")
		return
	}
	item, err := s.menu.Add(r.Context(), req.Name, price, req.Image)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad json")
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		badRequest(w, "price must be a decimal number")
		return
	}
	err = s.menu.Update(r.Context(), id, req.Name, price, req.Image)
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		badRequest(w, err.Error())
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.menu.Delete(r.Context(), id); err != nil {
		serverError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	s.writeCart(w, r)
}

func (s *Server) cartTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := s.billing.Totals(r.Context(), taxEnabled(r))
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad json")
		return
	}
	if err := s.billing.AddToCart(r.Context(), req.ItemID); err != nil {
		serverError(w, err)
		return
	}
	s.writeCart(w, r)
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad json")
		return
	}
	if err := s.billing.UpdateQuantity(r.Context(), id, req.Delta); err != nil {
		serverError(w, err)
		return
	}
	s.writeCart(w, r)
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.billing.RemoveFromCart(r.Context(), id); err != nil {
		serverError(w, err)
		return
	}
	s.writeCart(w, r)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.billing.ClearCart(r.Context()); err != nil {
		serverError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) completePayment(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad json")
		return
	}
	tx, err := s.checkout.CompletePayment(r.Context(), req.TaxEnabled)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil && tx.ID != "":
		// sale recorded, only the bill print failed
		log.Printf("bill print failed for %s: %v", tx.ID, err)
		writeJSON(w, http.StatusCreated, tx)
	case err != nil:
		serverError(w, err)
	default:
		writeJSON(w, http.StatusCreated, tx)
	}
}

func (s *Server) monthlyReport(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	report, err := s.reports.MonthlyReport(r.Context(), month)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if report.Transactions == nil {
		report.Transactions = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, reportResponse{
		MonthlyReport: report,
		HasData:       report.Summary.TransactionCount > 0,
	})
}

func (s *Server) writeCart(w http.ResponseWriter, r *http.Request) {
	cart, err := s.billing.Cart(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}
	if cart == nil {
		cart = []models.CartLine{}
	}
	writeJSON(w, http.StatusOK, cartResponse{
		Items:  cart,
		Totals: services.TotalsFor(cart, taxEnabled(r)),
	})
}

// taxEnabled reads the UI-owned tax toggle from the request. Default is on,
// matching a register whose toggle starts checked.
func taxEnabled(r *http.Request) bool {
	switch r.URL.Query().Get("tax") {
	case "false", "0":
		return false
	default:
		return true
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		badRequest(w, "invalid id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

func serverError(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
