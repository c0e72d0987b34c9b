package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
	"github.com/jhoicas/magasin-category-import/internal/domain/repository"
)

var _ repository.StoreCategoryRepository = (*StoreCategoryRepo)(nil)

// StoreCategoryRepo implementación del puerto StoreCategoryRepository sobre SQLite.
type StoreCategoryRepo struct {
	db *sql.DB
}

// NewStoreCategoryRepository construye el adaptador.
func NewStoreCategoryRepository(db *sql.DB) *StoreCategoryRepo {
	return &StoreCategoryRepo{db: db}
}

// Exists compara los cinco campos de la clave; IS trata NULL = NULL.
func (r *StoreCategoryRepo) Exists(ctx context.Context, key entity.StoreCategoryKey) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM magasin_category
			WHERE magasin_id = ? AND category_id = ?
			  AND subcategory_id IS ? AND main_category_id IS ? AND type = ?)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query,
		key.StoreID, key.CategoryID, toNull(key.SubcategoryID), toNull(key.MainCategoryID), string(key.Type),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists magasin_category: %w", err)
	}
	return exists, nil
}

// InsertIfAbsent inserta la fila; INSERT OR IGNORE se apoya en magasin_category_key_uniq.
func (r *StoreCategoryRepo) InsertIfAbsent(ctx context.Context, e *entity.StoreCategory) (bool, error) {
	query := `
		INSERT OR IGNORE INTO magasin_category (magasin_id, category_id, subcategory_id, main_category_id, type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.StoreID, e.CategoryID, toNull(e.SubcategoryID), toNull(e.MainCategoryID), string(e.Type),
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert magasin_category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert magasin_category: %w", err)
	}
	return n == 1, nil
}

// ListByStore lista las filas de un magasin con paginación.
func (r *StoreCategoryRepo) ListByStore(ctx context.Context, storeID int64, limit, offset int) ([]*entity.StoreCategory, error) {
	query := `
		SELECT magasin_id, category_id, subcategory_id, main_category_id, type, created_at, updated_at
		FROM magasin_category WHERE magasin_id = ?
		ORDER BY category_id, type LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list magasin_category: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreCategory
	for rows.Next() {
		var e entity.StoreCategory
		var sub, main sql.NullInt64
		var typ string
		if err := rows.Scan(&e.StoreID, &e.CategoryID, &sub, &main, &typ, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan magasin_category: %w", err)
		}
		e.SubcategoryID = fromNull(sub)
		e.MainCategoryID = fromNull(main)
		e.Type = entity.MappingType(typ)
		list = append(list, &e)
	}
	return list, rows.Err()
}

func toNull(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func fromNull(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
