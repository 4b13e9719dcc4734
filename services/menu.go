package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"restaurant-pos/models"
	"restaurant-pos/store"
)

// ErrNotFound is returned when a menu operation references an id that is not
// on the menu.
var ErrNotFound = errors.New("menu item not found")

// Menu manages the sellable items. Deleting or editing an item never touches
// cart lines or past transactions; they keep the name and price copied when
// the item was added.
type Menu struct {
	store store.Store
}

func NewMenu(s store.Store) *Menu {
	return &Menu{store: s}
}

func (m *Menu) List(ctx context.Context) ([]models.MenuItem, error) {
	return m.store.LoadMenu(ctx)
}

func (m *Menu) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	menu, err := m.store.LoadMenu(ctx)
	if err != nil {
		return nil, err
	}
	for i := range menu {
		if menu[i].ID == id {
			item := menu[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a new item. The id is one past the highest existing id, 1 for
// an empty menu.
func (m *Menu) Add(ctx context.Context, name string, price decimal.Decimal, image string) (models.MenuItem, error) {
	if err := validateItem(name, price); err != nil {
		return models.MenuItem{}, err
	}
	menu, err := m.store.LoadMenu(ctx)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("load menu: %w", err)
	}
	var maxID int64
	for _, it := range menu {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	item := models.MenuItem{ID: maxID + 1, Name: name, Price: price, Image: image}
	menu = append(menu, item)
	if err := m.store.SaveMenu(ctx, menu); err != nil {
		return models.MenuItem{}, fmt.Errorf("save menu: %w", err)
	}
	return item, nil
}

// Update replaces the item's name, price and image.
func (m *Menu) Update(ctx context.Context, id int64, name string, price decimal.Decimal, image string) error {
	if err := validateItem(name, price); err != nil {
		return err
	}
	menu, err := m.store.LoadMenu(ctx)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}
	idx := -1
	for i := range menu {
		if menu[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	menu[idx].Name = name
	menu[idx].Price = price
	menu[idx].Image = image
	if err := m.store.SaveMenu(ctx, menu); err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	return nil
}

// Delete removes the item from the menu. An unknown id is ignored.
func (m *Menu) Delete(ctx context.Context, id int64) error {
	menu, err := m.store.LoadMenu(ctx)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}
	kept := menu[:0]
	for _, it := range menu {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if err := m.store.SaveMenu(ctx, kept); err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	return nil
}

func validateItem(name string, price decimal.Decimal) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if price.IsNegative() {
		return fmt.Errorf("price must be >= 0")
	}
	return nil
}
