package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of a completed sale. Items is a snapshot
// of the cart at checkout time. Date holds the calendar day as "YYYY-MM-DD";
// monthly reports filter on it, not on Timestamp.
type Transaction struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Timestamp  time.Time       `json:"timestamp"`
	Items      []CartLine      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	TaxEnabled bool            `json:"taxEnabled"`
	Total      decimal.Decimal `json:"total"`
}
