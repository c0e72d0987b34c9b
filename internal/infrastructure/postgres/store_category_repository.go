package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
	"github.com/jhoicas/magasin-category-import/internal/domain/repository"
)

var _ repository.StoreCategoryRepository = (*StoreCategoryRepo)(nil)

// StoreCategoryRepo implementación del puerto StoreCategoryRepository sobre PostgreSQL.
type StoreCategoryRepo struct {
	q Querier
}

// NewStoreCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreCategoryRepository(q Querier) *StoreCategoryRepo {
	return &StoreCategoryRepo{q: q}
}

// Exists compara los cinco campos de la clave con IS NOT DISTINCT FROM para los nullables.
func (r *StoreCategoryRepo) Exists(ctx context.Context, key entity.StoreCategoryKey) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM magasin_category
			WHERE magasin_id = $1 AND category_id = $2
			  AND subcategory_id IS NOT DISTINCT FROM $3
			  AND main_category_id IS NOT DISTINCT FROM $4
			  AND type = $5)`
	var exists bool
	err := r.q.QueryRow(ctx, query,
		key.StoreID, key.CategoryID, key.SubcategoryID, key.MainCategoryID, string(key.Type),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists magasin_category: %w", err)
	}
	return exists, nil
}

// InsertIfAbsent inserta la fila solo si no existe otra con la misma clave. El NOT EXISTS basta
// en tablas sin índice único; con magasin_category_key_uniq, ON CONFLICT DO NOTHING cubre además
// la carrera entre dos importaciones simultáneas.
func (r *StoreCategoryRepo) InsertIfAbsent(ctx context.Context, e *entity.StoreCategory) (bool, error) {
	query := `
		INSERT INTO magasin_category (magasin_id, category_id, subcategory_id, main_category_id, type, created_at, updated_at)
		SELECT $1::bigint, $2::bigint, $3::bigint, $4::bigint, $5::varchar, $6::timestamptz, $7::timestamptz
		WHERE NOT EXISTS (
			SELECT 1 FROM magasin_category
			WHERE magasin_id = $1 AND category_id = $2
			  AND subcategory_id IS NOT DISTINCT FROM $3
			  AND main_category_id IS NOT DISTINCT FROM $4
			  AND type = $5)
		ON CONFLICT DO NOTHING`
	cmd, err := r.q.Exec(ctx, query,
		e.StoreID, e.CategoryID, e.SubcategoryID, e.MainCategoryID, string(e.Type),
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert magasin_category: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// ListByStore lista las filas de un magasin con paginación.
func (r *StoreCategoryRepo) ListByStore(ctx context.Context, storeID int64, limit, offset int) ([]*entity.StoreCategory, error) {
	query := `
		SELECT magasin_id, category_id, subcategory_id, main_category_id, type, created_at, updated_at
		FROM magasin_category WHERE magasin_id = $1
		ORDER BY category_id, type LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list magasin_category: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreCategory
	for rows.Next() {
		var e entity.StoreCategory
		var typ string
		if err := rows.Scan(&e.StoreID, &e.CategoryID, &e.SubcategoryID, &e.MainCategoryID, &typ, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan magasin_category: %w", err)
		}
		e.Type = entity.MappingType(typ)
		list = append(list, &e)
	}
	return list, rows.Err()
}
