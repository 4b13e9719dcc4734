package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-pos/models"
	"restaurant-pos/store"
)

// Reports is the read side: pure aggregation over the transaction log.
type Reports struct {
	store store.Store
}

func NewReports(s store.Store) *Reports {
	return &Reports{store: s}
}

// MonthlySales returns the transactions whose stored calendar date falls in
// month ("YYYY-MM"), in log (chronological) order. The comparison uses the
// transaction's date field, never its timestamp. Records whose date does not
// parse are skipped.
func (r *Reports) MonthlySales(ctx context.Context, month string) ([]models.Transaction, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	txs, err := r.store.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	var out []models.Transaction
	for _, tx := range txs {
		d, err := time.Parse("2006-01-02", tx.Date)
		if err != nil {
			continue
		}
		if d.Format("2006-01") == month {
			out = append(out, tx)
		}
	}
	return out, nil
}

// MonthlyReport bundles the filtered transactions, item-wise sales and the
// summary for one month.
func (r *Reports) MonthlyReport(ctx context.Context, month string) (models.MonthlyReport, error) {
	txs, err := r.MonthlySales(ctx, month)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	return models.MonthlyReport{
		Month:        month,
		Summary:      Summarize(txs),
		ItemSales:    ItemWiseSales(txs),
		Transactions: txs,
	}, nil
}

// ItemWiseSales accumulates quantity and revenue per item name across the
// given transactions. The key is the name, not the item id: two menu items
// that share a name merge into one row.
func ItemWiseSales(txs []models.Transaction) map[string]models.ItemSales {
	sales := make(map[string]models.ItemSales)
	for _, tx := range txs {
		for _, line := range tx.Items {
			s := sales[line.Name]
			s.Quantity += line.Quantity
			s.Revenue = s.Revenue.Add(line.LineTotal())
			sales[line.Name] = s
		}
	}
	return sales
}

// Summarize computes the headline numbers for a set of transactions. Records
// written before the subtotal field existed carry a zero subtotal; their
// total stands in for it. AverageOrder stays zero when there are no
// transactions; callers render that as "no data" instead of dividing by zero.
func Summarize(txs []models.Transaction) models.MonthlySummary {
	var s models.MonthlySummary
	for _, tx := range txs {
		s.TotalSales = s.TotalSales.Add(tx.Total)
		s.TotalTax = s.TotalTax.Add(tx.Tax)
		sub := tx.Subtotal
		if sub.IsZero() && !tx.Total.IsZero() {
			sub = tx.Total
		}
		s.TotalSubtotal = s.TotalSubtotal.Add(sub)
	}
	s.TransactionCount = len(txs)
	if s.TransactionCount > 0 {
		s.AverageOrder = s.TotalSales.Div(decimal.NewFromInt(int64(s.TransactionCount)))
	}
	return s
}
