package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// date_sale se guarda como microsegundos Unix (UTC): ordena numéricamente sin depender
// del formato de texto del driver. price se guarda como texto decimal con dos dígitos.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS publisher (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL CHECK (name <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS book (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		title        TEXT NOT NULL CHECK (title <> ''),
		id_publisher INTEGER NOT NULL REFERENCES publisher (id)
	)`,
	`CREATE TABLE IF NOT EXISTS shop (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL CHECK (name <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS stock (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		id_book INTEGER NOT NULL REFERENCES book (id),
		id_shop INTEGER NOT NULL REFERENCES shop (id),
		count   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS sale (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		price     TEXT NOT NULL,
		date_sale INTEGER NOT NULL DEFAULT (CAST(strftime('%s', 'now') AS INTEGER) * 1000000),
		id_stock  INTEGER NOT NULL REFERENCES stock (id),
		count     INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_publisher ON book (id_publisher)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_book_shop ON stock (id_book, id_shop)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_stock ON sale (id_stock)`,
}

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, db sqlx.ExtContext) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}
