package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"restaurant-pos/models"
)

// DefaultMenu returns the fixed starter menu a fresh install is seeded with.
func DefaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Idly", Price: decimal.NewFromInt(20), Image: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop&q=80"},
		{ID: 2, Name: "Dosa", Price: decimal.NewFromInt(30), Image: "https://images.unsplash.com/photo-1614899269993-e8f60dfd132a?w=400&h=300&fit=crop&q=80"},
		{ID: 3, Name: "Puttu", Price: decimal.NewFromInt(25), Image: "https://images.unsplash.com/photo-1551782450-17144efb9c50?w=400&h=300&fit=crop&q=80"},
		{ID: 4, Name: "Vada", Price: decimal.NewFromInt(15), Image: "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400&h=300&fit=crop&q=80"},
		{ID: 5, Name: "Poori", Price: decimal.NewFromInt(25), Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop&q=80"},
		{ID: 6, Name: "Coffee", Price: decimal.NewFromInt(15), Image: "https://images.unsplash.com/photo-1511920170033-f8396924c348?w=400&h=300&fit=crop&q=80"},
		{ID: 7, Name: "Tea", Price: decimal.NewFromInt(10), Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400&h=300&fit=crop&q=80"},
	}
}

// EnsureDefaultMenu seeds the menu collection when it is absent or empty.
// It never overwrites a non-empty menu, so calling it on every startup is
// safe.
func EnsureDefaultMenu(ctx context.Context, s Store) error {
	menu, err := s.LoadMenu(ctx)
	if err != nil {
		return fmt.Errorf("ensure default menu: %w", err)
	}
	if len(menu) > 0 {
		return nil
	}
	if err := s.SaveMenu(ctx, DefaultMenu()); err != nil {
		return fmt.Errorf("ensure default menu: %w", err)
	}
	return nil
}
