// Package store abre el almacenamiento configurado (PostgreSQL o SQLite) y expone
// los repositorios que usan los casos de uso.
package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/bookstore-ledger/internal/domain/repository"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/bookstore-ledger/pkg/config"
)

// Store repositorios y operaciones de mantenimiento sobre un driver concreto.
type Store struct {
	Driver  string
	Reports repository.SalesReportRepository
	Catalog repository.CatalogTxRunner

	ensureSchema func(ctx context.Context) error
	ping         func(ctx context.Context) error
	close        func() error
}

// Open conecta con el driver de cfg.Driver.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:       config.DriverPostgres,
			Reports:      postgres.NewSalesReportRepository(pool),
			Catalog:      postgres.NewTxRunner(pool),
			ensureSchema: func(ctx context.Context) error { return postgres.EnsureSchema(ctx, pool) },
			ping:         pool.Ping,
			close:        func() error { pool.Close(); return nil },
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLite(db), nil
	default:
		return nil, fmt.Errorf("driver no soportado: %q", cfg.Driver)
	}
}

// NewSQLite envuelve una base SQLite ya abierta. Close la cierra.
func NewSQLite(db *sqlx.DB) *Store {
	return &Store{
		Driver:       config.DriverSQLite,
		Reports:      sqlite.NewSalesReportRepository(db),
		Catalog:      sqlite.NewTxRunner(db),
		ensureSchema: func(ctx context.Context) error { return sqlite.EnsureSchema(ctx, db) },
		ping:         db.PingContext,
		close:        db.Close,
	}
}

// EnsureSchema crea las tablas si no existen.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.ensureSchema(ctx)
}

// Ping verifica la conexión.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close libera las conexiones.
func (s *Store) Close() error {
	return s.close()
}
