package store

import (
	"context"
	"slices"
	"sync"

	"restaurant-pos/models"
)

// Memory is an in-process Store for tests and throwaway demo runs. Loads
// return copies so callers cannot mutate stored state behind its back.
type Memory struct {
	mu   sync.Mutex
	menu []models.MenuItem
	cart []models.CartLine
	log  []models.Transaction
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) LoadMenu(ctx context.Context) ([]models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.menu), nil
}

func (m *Memory) SaveMenu(ctx context.Context, menu []models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menu = slices.Clone(menu)
	return nil
}

func (m *Memory) LoadCart(ctx context.Context) ([]models.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.cart), nil
}

func (m *Memory) SaveCart(ctx context.Context, cart []models.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = slices.Clone(cart)
	return nil
}

func (m *Memory) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.log), nil
}

func (m *Memory) AppendTransaction(ctx context.Context, tx models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx.Items = slices.Clone(tx.Items)
	m.log = append(m.log, tx)
	return nil
}
