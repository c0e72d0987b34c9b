package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/magasin-category-import/internal/domain"
)

// MappingType tipo de fila en la tabla magasin_category.
type MappingType string

const (
	MappingCategory       MappingType = "category"
	MappingSubcategory    MappingType = "subcategory"
	MappingSubsubcategory MappingType = "subsubcategory"
)

// Valid indica si el tipo es uno de los tres admitidos por la tabla.
func (t MappingType) Valid() bool {
	switch t {
	case MappingCategory, MappingSubcategory, MappingSubsubcategory:
		return true
	}
	return false
}

// StoreCategory fila desnormalizada que registra que un magasin trabaja una categoría
// en un nivel de la jerarquía. Se crea una sola vez y nunca se modifica.
type StoreCategory struct {
	StoreID        int64
	CategoryID     int64
	SubcategoryID  *int64
	MainCategoryID *int64
	Type           MappingType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Key devuelve la tupla de unicidad de la fila.
func (e *StoreCategory) Key() StoreCategoryKey {
	return StoreCategoryKey{
		StoreID:        e.StoreID,
		CategoryID:     e.CategoryID,
		SubcategoryID:  e.SubcategoryID,
		MainCategoryID: e.MainCategoryID,
		Type:           e.Type,
	}
}

// StoreCategoryKey los cinco campos que identifican una fila; nil se compara igual a nil.
type StoreCategoryKey struct {
	StoreID        int64
	CategoryID     int64
	SubcategoryID  *int64
	MainCategoryID *int64
	Type           MappingType
}

// String formato estable para logs y para indexar la clave en memoria.
func (k StoreCategoryKey) String() string {
	return fmt.Sprintf("%d/%d/%s/%s/%s", k.StoreID, k.CategoryID, optID(k.SubcategoryID), optID(k.MainCategoryID), k.Type)
}

// NewStoreCategory deriva la fila para category según el tipo pedido:
//   - category: main = category.ID, sub = nil
//   - subcategory: sub = category.ID, main = category.ParentID
//   - subsubcategory: sub = category.ParentID, main = parent.ParentID (nil si parent es nil)
//
// parent solo se usa para subsubcategory.
func NewStoreCategory(storeID int64, category, parent *Category, typ MappingType, now time.Time) (*StoreCategory, error) {
	if category == nil {
		return nil, fmt.Errorf("%w: categoría nil", domain.ErrInvalidInput)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: tipo de categoría desconocido %q", domain.ErrInvalidInput, typ)
	}
	e := &StoreCategory{
		StoreID:    storeID,
		CategoryID: category.ID,
		Type:       typ,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	switch typ {
	case MappingCategory:
		e.MainCategoryID = ptr(category.ID)
	case MappingSubcategory:
		e.SubcategoryID = ptr(category.ID)
		e.MainCategoryID = copyID(category.ParentID)
	case MappingSubsubcategory:
		e.SubcategoryID = copyID(category.ParentID)
		if parent != nil {
			e.MainCategoryID = copyID(parent.ParentID)
		}
	}
	return e, nil
}

func ptr(v int64) *int64 { return &v }

func copyID(p *int64) *int64 {
	if p == nil {
		return nil
	}
	return ptr(*p)
}

func optID(p *int64) string {
	if p == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *p)
}
