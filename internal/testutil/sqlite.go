// Package testutil arma almacenes SQLite en memoria para las pruebas de los demás paquetes.
package testutil

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/sqlite"
)

// SQLite abre una base en memoria con el esquema aplicado. Se cierra al terminar el test.
func SQLite(t testing.TB) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlite.EnsureSchema(context.Background(), db))
	return db
}

// Seeded abre una base en memoria con el catálogo de demostración.
func Seeded(t testing.TB) *sqlx.DB {
	t.Helper()
	db := SQLite(t)
	res := Seed(t, db)
	require.True(t, res.Seeded)
	return db
}

// Seed puebla db con usecase.DefaultSeedData.
func Seed(t testing.TB, db *sqlx.DB) *dto.SeedResult {
	t.Helper()
	res, err := usecase.NewSeedUseCase(sqlite.NewTxRunner(db), nil).Seed(context.Background())
	require.NoError(t, err)
	return res
}
