package models

import "github.com/shopspring/decimal"

// MenuItem is a sellable product. Identity is ID; names need not be unique.
type MenuItem struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}
