package repository

import (
	"context"

	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
)

// StoreCategoryRepository define el puerto de persistencia para la tabla magasin_category (DIP).
type StoreCategoryRepository interface {
	// Exists compara los cinco campos de la clave; nil es igual a nil.
	Exists(ctx context.Context, key entity.StoreCategoryKey) (bool, error)
	// InsertIfAbsent inserta la fila salvo que ya exista una con la misma clave, en una sola
	// sentencia respaldada por el índice único. Devuelve true si se escribió.
	InsertIfAbsent(ctx context.Context, entry *entity.StoreCategory) (bool, error)
	ListByStore(ctx context.Context, storeID int64, limit, offset int) ([]*entity.StoreCategory, error)
}
