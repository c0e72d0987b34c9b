// Package sqlite implementa los repositorios sobre SQLite embebido (modernc.org/sqlite, sin cgo).
// Se usa en desarrollo local y en pruebas; producción usa el paquete postgres.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY,
	parent_id INTEGER,
	name TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS categories_parent_id_idx ON categories (parent_id);

CREATE TABLE IF NOT EXISTS magasin_category (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	magasin_id INTEGER NOT NULL,
	category_id INTEGER NOT NULL,
	subcategory_id INTEGER,
	main_category_id INTEGER,
	type TEXT NOT NULL CHECK (type IN ('category', 'subcategory', 'subsubcategory')),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS magasin_category_key_uniq ON magasin_category (
	magasin_id, category_id, IFNULL(subcategory_id, 0), IFNULL(main_category_id, 0), type
);
`

// Open abre (o crea) la base en path y asegura las tablas.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de sqlite: %w", err)
	}
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Un solo escritor; evita SQLITE_BUSY entre conexiones del pool.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear tablas sqlite: %w", err)
	}
	return db, nil
}
