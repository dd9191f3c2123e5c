// Package storage owns the local catalog database: schema creation and the
// transactional read/write surface used by the services.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/fieldassets/fieldassets/internal/client/migrations"
	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/client/repositories/customers"
	"github.com/fieldassets/fieldassets/internal/client/repositories/dealers"
	"github.com/fieldassets/fieldassets/internal/common"
	"github.com/fieldassets/fieldassets/internal/dbx"
)

// Store is the local catalog cache. Every row is tagged with the owning
// user; reads and replaces are always scoped by that tag, so users sharing
// a device never see each other's data.
type Store struct {
	db *sql.DB
}

// RunMigrations applies the embedded schema migrations. Safe to run on
// every start.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the catalog database at dsn and ensures
// the schema exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ReplaceDealers swaps ownerTag's dealer rows for the given list in a
// single transaction: concurrent readers observe either the old complete
// set or the new complete set, never a partial one.
func (s *Store) ReplaceDealers(ctx context.Context, ownerTag string, list []models.Dealer) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return dealers.NewSQLiteRepository(tx).ReplaceForOwner(ctx, ownerTag, list)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

// ReplaceCustomers swaps ownerTag's customer rows for the given list in a
// single transaction. The scope is the whole owner, not a single dealer.
func (s *Store) ReplaceCustomers(ctx context.Context, ownerTag string, list []models.Customer) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return customers.NewSQLiteRepository(tx).ReplaceForOwner(ctx, ownerTag, list)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

// ListDealers returns ownerTag's cached dealers ordered by name.
func (s *Store) ListDealers(ctx context.Context, ownerTag string) ([]models.Dealer, error) {
	list, err := dealers.NewSQLiteRepository(s.db).ListByOwner(ctx, ownerTag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return list, nil
}

// ListCustomers returns ownerTag's cached customers for one dealer ordered
// by name.
func (s *Store) ListCustomers(ctx context.Context, ownerTag, dealerCode string) ([]models.Customer, error) {
	list, err := customers.NewSQLiteRepository(s.db).ListByOwnerAndDealer(ctx, ownerTag, dealerCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return list, nil
}
