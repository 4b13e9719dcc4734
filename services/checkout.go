package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"restaurant-pos/models"
	"restaurant-pos/store"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the
// cart. No transaction is created in that case.
var ErrEmptyCart = errors.New("cart is empty")

// Checkout finalizes sales: it snapshots the cart into an immutable
// transaction, appends it to the log and clears the cart.
type Checkout struct {
	store   store.Store
	printer BillPrinter
}

func NewCheckout(s store.Store, p BillPrinter) *Checkout {
	if p == nil {
		p = NopPrinter{}
	}
	return &Checkout{store: s, printer: p}
}

// CompletePayment records the sale and returns the finalized transaction.
// The recorded totals are computed from the cart at this instant with the
// given tax toggle. After the transaction is durable the bill is handed to
// the printer and the cart is cleared; a print failure is reported in the
// returned error but does not undo the sale, so callers may receive both a
// valid transaction and a non-nil error.
func (c *Checkout) CompletePayment(ctx context.Context, taxEnabled bool) (models.Transaction, error) {
	cart, err := c.store.LoadCart(ctx)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("load cart: %w", err)
	}
	if len(cart) == 0 {
		return models.Transaction{}, ErrEmptyCart
	}

	totals := TotalsFor(cart, taxEnabled)
	now := time.Now()
	tx := models.Transaction{
		ID:         "txn_" + uuid.NewString(),
		Date:       now.Format("2006-01-02"),
		Timestamp:  now,
		Items:      slices.Clone(cart),
		Subtotal:   totals.Subtotal,
		Tax:        totals.Tax,
		TaxEnabled: taxEnabled,
		Total:      totals.Total,
	}

	if err := c.store.AppendTransaction(ctx, tx); err != nil {
		return models.Transaction{}, fmt.Errorf("record transaction: %w", err)
	}
	printErr := c.printer.PrintBill(ctx, tx)
	if err := c.store.SaveCart(ctx, []models.CartLine{}); err != nil {
		return models.Transaction{}, fmt.Errorf("clear cart: %w", err)
	}
	if printErr != nil {
		return tx, fmt.Errorf("print bill: %w", printErr)
	}
	return tx, nil
}
