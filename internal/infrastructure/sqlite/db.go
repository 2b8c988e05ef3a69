// Package sqlite implementa los repositorios sobre un archivo SQLite embebido
// (modernc.org/sqlite, sin cgo). Sirve para modo offline y como almacén hermético en pruebas.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// MemoryPath abre una base en memoria.
const MemoryPath = ":memory:"

// Open abre la base SQLite en path con claves foráneas activas.
// SQLite admite un único escritor y cada conexión a :memory: es una base distinta,
// por eso el pool se limita a una conexión.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("conectar sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

func dsn(path string) string {
	if path == "" || path == MemoryPath {
		path = ":memory:"
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
