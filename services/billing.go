package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"restaurant-pos/models"
	"restaurant-pos/store"
)

// taxRate is 5%, applied only when the register's tax toggle is on.
var taxRate = decimal.RequireFromString("0.05")

// Billing mutates the cart and computes derived totals. Every operation
// reads the cart from the store and writes the whole cart back; totals are
// recomputed from the stored cart on each request, never cached.
type Billing struct {
	store store.Store
}

func NewBilling(s store.Store) *Billing {
	return &Billing{store: s}
}

// Cart returns the current cart lines in order.
func (b *Billing) Cart(ctx context.Context) ([]models.CartLine, error) {
	return b.store.LoadCart(ctx)
}

// AddToCart adds one unit of the given menu item to the cart. The line copies
// the item's current name and price. An unknown item id is ignored.
func (b *Billing) AddToCart(ctx context.Context, itemID int64) error {
	menu, err := b.store.LoadMenu(ctx)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}
	var item *models.MenuItem
	for i := range menu {
		if menu[i].ID == itemID {
			item = &menu[i]
			break
		}
	}
	if item == nil {
		return nil
	}

	cart, err := b.store.LoadCart(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	found := false
	for i := range cart {
		if cart[i].ItemID == itemID {
			cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, models.CartLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		})
	}
	if err := b.store.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// UpdateQuantity adds delta to the line's quantity. A quantity that drops to
// zero or below removes the line. An unknown item id is ignored.
func (b *Billing) UpdateQuantity(ctx context.Context, itemID int64, delta int) error {
	cart, err := b.store.LoadCart(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	idx := -1
	for i := range cart {
		if cart[i].ItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	cart[idx].Quantity += delta
	if cart[idx].Quantity <= 0 {
		cart = append(cart[:idx], cart[idx+1:]...)
	}
	if err := b.store.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// RemoveFromCart drops the line with the given item id regardless of its
// quantity. An unknown item id is ignored.
func (b *Billing) RemoveFromCart(ctx context.Context, itemID int64) error {
	cart, err := b.store.LoadCart(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	kept := cart[:0]
	for _, l := range cart {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}
	if err := b.store.SaveCart(ctx, kept); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// ClearCart empties the cart. Asking the user for confirmation is the UI's
// job; this always clears.
func (b *Billing) ClearCart(ctx context.Context) error {
	if err := b.store.SaveCart(ctx, []models.CartLine{}); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Totals computes subtotal, tax and total from the stored cart. The tax
// toggle belongs to the UI; its current value is passed in per request.
func (b *Billing) Totals(ctx context.Context, taxEnabled bool) (models.Totals, error) {
	cart, err := b.store.LoadCart(ctx)
	if err != nil {
		return models.Totals{}, fmt.Errorf("load cart: %w", err)
	}
	return TotalsFor(cart, taxEnabled), nil
}

// TotalsFor computes the derived amounts for the given cart lines:
// subtotal = Σ price×quantity, tax = subtotal×5% when enabled else 0,
// total = subtotal+tax.
func TotalsFor(lines []models.CartLine, taxEnabled bool) models.Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	tax := decimal.Zero
	if taxEnabled {
		tax = subtotal.Mul(taxRate)
	}
	return models.Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      subtotal.Add(tax),
		TaxEnabled: taxEnabled,
	}
}
