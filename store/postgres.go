package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"restaurant-pos/models"
)

// PGStore keeps each collection as a single JSON document row in the
// collections table, overwritten wholesale on every save. One logical
// register owns the data, so there is no finer-grained locking.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(ctx context.Context, connStr string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PGStore{pool: pool}, nil
}

func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Exec runs a raw statement; used by the migrate subcommand.
func (s *PGStore) Exec(ctx context.Context, sql string) error {
	_, err := s.pool.Exec(ctx, sql)
	return err
}

func (s *PGStore) loadDoc(ctx context.Context, name string, out any) error {
	var doc []byte
	err := s.pool.QueryRow(ctx, `
		SELECT doc FROM collections WHERE name = $1`,
		name,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil // never written = empty collection
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if len(doc) == 0 {
		return nil
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *PGStore) saveDoc(ctx context.Context, name string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO collections (name, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET
			doc = $2,
			updated_at = now()`,
		name, doc,
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *PGStore) LoadMenu(ctx context.Context) ([]models.MenuItem, error) {
	var menu []models.MenuItem
	if err := s.loadDoc(ctx, collectionMenu, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *PGStore) SaveMenu(ctx context.Context, menu []models.MenuItem) error {
	return s.saveDoc(ctx, collectionMenu, menu)
}

func (s *PGStore) LoadCart(ctx context.Context) ([]models.CartLine, error) {
	var cart []models.CartLine
	if err := s.loadDoc(ctx, collectionCart, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *PGStore) SaveCart(ctx context.Context, cart []models.CartLine) error {
	return s.saveDoc(ctx, collectionCart, cart)
}

func (s *PGStore) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.loadDoc(ctx, collectionTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *PGStore) AppendTransaction(ctx context.Context, tx models.Transaction) error {
	txs, err := s.LoadTransactions(ctx)
	if err != nil {
		return err
	}
	txs = append(txs, tx)
	return s.saveDoc(ctx, collectionTransactions, txs)
}
