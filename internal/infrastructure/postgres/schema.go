package postgres

import (
	"context"
	"fmt"
)

// schemaStatements crea las cinco tablas del libro mayor si no existen.
// Los nombres de columna de FK siguen la convención id_<tabla>.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS publisher (
		id   SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL CHECK (name <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS book (
		id           SERIAL PRIMARY KEY,
		title        VARCHAR(255) NOT NULL CHECK (title <> ''),
		id_publisher INTEGER NOT NULL REFERENCES publisher (id)
	)`,
	`CREATE TABLE IF NOT EXISTS shop (
		id   SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL CHECK (name <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS stock (
		id      SERIAL PRIMARY KEY,
		id_book INTEGER NOT NULL REFERENCES book (id),
		id_shop INTEGER NOT NULL REFERENCES shop (id),
		count   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS sale (
		id        SERIAL PRIMARY KEY,
		price     NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
		date_sale TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
		id_stock  INTEGER NOT NULL REFERENCES stock (id),
		count     INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_publisher ON book (id_publisher)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_book_shop ON stock (id_book, id_shop)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_stock ON sale (id_stock)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_date ON sale (date_sale DESC)`,
}

// EnsureSchema aplica el esquema de forma idempotente (no es un sistema de migraciones).
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}
