package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"restaurant-pos/models"
)

// FileStore keeps each collection as a JSON file in a local data directory.
// It is the default backend for a single-register setup. Writes go through a
// temp file and rename so a failed write never leaves a half-written
// collection behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) load(name string, out any) error {
	b, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil // never written = empty collection
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) save(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) LoadMenu(ctx context.Context) ([]models.MenuItem, error) {
	var menu []models.MenuItem
	if err := s.load(collectionMenu, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *FileStore) SaveMenu(ctx context.Context, menu []models.MenuItem) error {
	return s.save(collectionMenu, menu)
}

func (s *FileStore) LoadCart(ctx context.Context) ([]models.CartLine, error) {
	var cart []models.CartLine
	if err := s.load(collectionCart, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *FileStore) SaveCart(ctx context.Context, cart []models.CartLine) error {
	return s.save(collectionCart, cart)
}

func (s *FileStore) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.load(collectionTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *FileStore) AppendTransaction(ctx context.Context, tx models.Transaction) error {
	txs, err := s.LoadTransactions(ctx)
	if err != nil {
		return err
	}
	txs = append(txs, tx)
	return s.save(collectionTransactions, txs)
}
