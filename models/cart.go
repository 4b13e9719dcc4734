package models

import "github.com/shopspring/decimal"

// CartLine is one in-progress order entry. Name and Price are copied from
// the menu item at add time, not live-linked: editing or deleting the menu
// item later leaves the line as it was.
type CartLine struct {
	ItemID   int64           `json:"itemId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// LineTotal is price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals are the derived amounts for the current cart. They are recomputed
// from the cart lines on every request and never stored.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	TaxEnabled bool            `json:"tax_enabled"`
}
