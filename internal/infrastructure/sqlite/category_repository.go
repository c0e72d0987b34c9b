package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
	"github.com/jhoicas/magasin-category-import/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo lectura del catálogo de categorías sobre SQLite.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// GetByID obtiene una categoría por ID; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, parent_id, name FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ListChildren lista los hijos directos ordenados por ID.
func (r *CategoryRepo) ListChildren(ctx context.Context, parentID int64) ([]*entity.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, parent_id, name FROM categories WHERE parent_id = ? ORDER BY id`, parentID)
	if err != nil {
		return nil, fmt.Errorf("list category children: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*entity.Category, error) {
	var c entity.Category
	var parentID sql.NullInt64
	if err := s.Scan(&c.ID, &parentID, &c.Name); err != nil {
		return nil, err
	}
	c.ParentID = fromNull(parentID)
	return &c, nil
}
