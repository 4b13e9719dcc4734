package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"restaurant-pos/store"
)

func TestMenuAddAssignsIDs(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	m := NewMenu(s)

	first, err := m.Add(ctx, "Idly", decimal.NewFromInt(20), "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}

	// ids are one past the highest existing id, even with gaps
	second, _ := m.Add(ctx, "Dosa", decimal.NewFromInt(30), "")
	if second.ID != 2 {
		t.Errorf("second id = %d, want 2", second.ID)
	}
	if err := m.Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	third, _ := m.Add(ctx, "Tea", decimal.NewFromInt(10), "")
	if third.ID != 3 {
		t.Errorf("third id = %d, want 3", third.ID)
	}
}

func TestMenuAddValidation(t *testing.T) {
	ctx := context.Background()
	m := NewMenu(store.NewMemory())

	tests := []struct {
		name  string
		item  string
		price decimal.Decimal
	}{
		{"empty name", "", decimal.NewFromInt(10)},
		{"negative price", "Coffee", decimal.NewFromInt(-1)},
	}
	for _, tt := range tests {
		if _, err := m.Add(ctx, tt.item, tt.price, ""); err == nil {
			t.Errorf("%s: want error, got nil", tt.name)
		}
	}

	// zero price is allowed
	if _, err := m.Add(ctx, "Water", decimal.Zero, ""); err != nil {
		t.Errorf("zero price: %v", err)
	}
}

func TestMenuUpdate(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	m := NewMenu(s)

	if err := m.Update(ctx, 1, "Ghee Idly", decimal.NewFromInt(35), "idly.jpg"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := m.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ghee Idly" || !got.Price.Equal(rupees(35)) || got.Image != "idly.jpg" {
		t.Errorf("item = %+v, want full replace", got)
	}

	if err := m.Update(ctx, 999, "X", decimal.NewFromInt(1), ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of unknown id: err = %v, want ErrNotFound", err)
	}
}

// Deleting a menu item leaves existing cart lines intact with their copied
// name and price; only new adds of that id become no-ops.
func TestMenuDeleteLeavesCartLines(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	b := NewBilling(s)
	m := NewMenu(s)

	_ = b.AddToCart(ctx, 1)
	if err := m.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	cart, _ := b.Cart(ctx)
	if len(cart) != 1 || cart[0].Name != "Idly" || !cart[0].Price.Equal(rupees(20)) {
		t.Errorf("orphaned line lost its copied fields: %+v", cart)
	}

	// deleted id no longer addable
	_ = b.AddToCart(ctx, 1)
	cart, _ = b.Cart(ctx)
	if cart[0].Quantity != 1 {
		t.Errorf("add of deleted item mutated the cart: %+v", cart)
	}

	// deleting an unknown id is a no-op
	if err := m.Delete(ctx, 999); err != nil {
		t.Errorf("delete of unknown id: %v", err)
	}
}

// Edits do not retroactively change cart lines either; the copied price
// stands until the line is re-added.
func TestMenuEditLeavesCartLines(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	b := NewBilling(s)
	m := NewMenu(s)

	_ = b.AddToCart(ctx, 1)
	if err := m.Update(ctx, 1, "Idly", decimal.NewFromInt(99), ""); err != nil {
		t.Fatal(err)
	}
	cart, _ := b.Cart(ctx)
	if !cart[0].Price.Equal(rupees(20)) {
		t.Errorf("cart line price = %s, want the copied 20", cart[0].Price)
	}

	// a fresh add picks up the new price on its own line only after removal
	_ = b.RemoveFromCart(ctx, 1)
	_ = b.AddToCart(ctx, 1)
	cart, _ = b.Cart(ctx)
	if !cart[0].Price.Equal(rupees(99)) {
		t.Errorf("new line price = %s, want current 99", cart[0].Price)
	}
}
