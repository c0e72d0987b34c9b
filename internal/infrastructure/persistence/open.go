// Package persistence elige el backend de almacenamiento según DB_DRIVER.
package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/magasin-category-import/internal/domain/repository"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/postgres"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/sqlite"
	"github.com/jhoicas/magasin-category-import/pkg/config"
)

// Stores repositorios listos para inyectar en los casos de uso.
type Stores struct {
	Categories repository.CategoryRepository
	Mappings   repository.StoreCategoryRepository
	close      func()
}

// Close libera las conexiones.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open conecta con PostgreSQL (pgxpool) o abre la base SQLite embebida.
func Open(ctx context.Context, cfg config.DBConfig) (*Stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &Stores{
			Categories: postgres.NewCategoryRepository(pool),
			Mappings:   postgres.NewStoreCategoryRepository(pool),
			close:      pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Categories: sqlite.NewCategoryRepository(db),
			Mappings:   sqlite.NewStoreCategoryRepository(db),
			close:      func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("driver de base de datos desconocido %q", cfg.Driver)
	}
}
