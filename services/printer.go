package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"restaurant-pos/models"
)

// BillPrinter receives the finalized transaction for rendering. The billing
// engine only supplies the data; how the bill reaches paper is up to the
// implementation.
type BillPrinter interface {
	PrintBill(ctx context.Context, tx models.Transaction) error
}

// NopPrinter discards bills.
type NopPrinter struct{}

func (NopPrinter) PrintBill(context.Context, models.Transaction) error { return nil }

// TextPrinter renders a plain-text receipt to W. Header defaults to
// "Restaurant" when empty.
type TextPrinter struct {
	W      io.Writer
	Header string
}

func (p TextPrinter) PrintBill(_ context.Context, tx models.Transaction) error {
	header := p.Header
	if header == "" {
		header = "Restaurant"
	}
	sep := strings.Repeat("-", 40)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", header)
	fmt.Fprintf(&b, "%s\n", tx.Timestamp.Format("02 Jan 2006 15:04"))
	fmt.Fprintf(&b, "%s\n", sep)
	for _, l := range tx.Items {
		fmt.Fprintf(&b, "%-18s %3d x %7s %8s\n",
			l.Name, l.Quantity, l.Price.StringFixed(2), l.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "%-24s %14s\n", "Subtotal", "Rs "+tx.Subtotal.StringFixed(2))
	if tx.TaxEnabled {
		fmt.Fprintf(&b, "%-24s %14s\n", "Tax (5%)", "Rs "+tx.Tax.StringFixed(2))
	}
	fmt.Fprintf(&b, "%-24s %14s\n", "Total", "Rs "+tx.Total.StringFixed(2))
	fmt.Fprintf(&b, "%s\n", tx.ID)

	_, err := io.WriteString(p.W, b.String())
	return err
}
