package models

import "github.com/shopspring/decimal"

// ItemSales is the accumulated quantity and revenue of one item name within
// a set of transactions.
type ItemSales struct {
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// MonthlySummary holds the headline numbers for one calendar month.
// AverageOrder is meaningful only when TransactionCount > 0; with an empty
// month it stays zero and renderers show "no data" instead.
type MonthlySummary struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalSubtotal    decimal.Decimal `json:"total_subtotal"`
	TotalTax         decimal.Decimal `json:"total_tax"`
	TransactionCount int             `json:"transaction_count"`
	AverageOrder     decimal.Decimal `json:"average_order"`
}

// MonthlyReport bundles everything the sales report screen renders for one
// month. Transactions keep the log's append order.
type MonthlyReport struct {
	Month        string               `json:"month"`
	Summary      MonthlySummary       `json:"summary"`
	ItemSales    map[string]ItemSales `json:"item_sales"`
	Transactions []Transaction        `json:"transactions"`
}
