package repository

import (
	"context"

	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura del catálogo de categorías (DIP).
// GetByID devuelve (nil, nil) si la categoría no existe.
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	// ListChildren devuelve los hijos directos ordenados por ID ascendente.
	ListChildren(ctx context.Context, parentID int64) ([]*entity.Category, error)
}
