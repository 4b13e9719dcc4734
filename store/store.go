package store

import (
	"context"

	"restaurant-pos/models"
)

// Store persists the three POS collections: menu, cart and transaction log.
// Loading a collection that was never written returns an empty slice; corrupt
// stored data or an I/O failure is an error, never a silent empty result.
// Saves are full overwrites of the collection.
type Store interface {
	LoadMenu(ctx context.Context) ([]models.MenuItem, error)
	SaveMenu(ctx context.Context, menu []models.MenuItem) error
	LoadCart(ctx context.Context) ([]models.CartLine, error)
	SaveCart(ctx context.Context, cart []models.CartLine) error
	LoadTransactions(ctx context.Context) ([]models.Transaction, error)
	AppendTransaction(ctx context.Context, tx models.Transaction) error
}

// Collection names. These must stay stable across versions so persisted data
// survives upgrades.
const (
	collectionMenu         = "restaurant_menu"
	collectionCart         = "restaurant_cart"
	collectionTransactions = "restaurant_transactions"
)
