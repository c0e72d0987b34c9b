package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magasin-category-import/internal/domain"
	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
)

func id(v int64) *int64 { return &v }

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestCategoryLevel(t *testing.T) {
	main := &entity.Category{ID: 3}
	sub := &entity.Category{ID: 17, ParentID: id(3)}
	subsub := &entity.Category{ID: 42, ParentID: id(17)}
	dangling := &entity.Category{ID: 99, ParentID: id(1000)}

	assert.Equal(t, entity.LevelMain, main.Level(nil))
	assert.Equal(t, entity.LevelSub, sub.Level(main))
	assert.Equal(t, entity.LevelSubSub, subsub.Level(sub))
	assert.Equal(t, entity.LevelSubSub, dangling.Level(nil), "un padre inexistente cae en el último nivel")
}

func TestNewStoreCategory_Subsubcategory(t *testing.T) {
	sub := &entity.Category{ID: 17, ParentID: id(3)}
	cat := &entity.Category{ID: 42, ParentID: id(17)}

	e, err := entity.NewStoreCategory(7, cat, sub, entity.MappingSubsubcategory, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, int64(7), e.StoreID)
	assert.Equal(t, int64(42), e.CategoryID)
	require.NotNil(t, e.SubcategoryID)
	assert.Equal(t, int64(17), *e.SubcategoryID)
	require.NotNil(t, e.MainCategoryID)
	assert.Equal(t, int64(3), *e.MainCategoryID)
	assert.Equal(t, entity.MappingSubsubcategory, e.Type)
	assert.Equal(t, fixedNow, e.CreatedAt)
	assert.Equal(t, fixedNow, e.UpdatedAt)
}

func TestNewStoreCategory_SubsubcategorySinPadre(t *testing.T) {
	cat := &entity.Category{ID: 42, ParentID: id(17)}

	e, err := entity.NewStoreCategory(7, cat, nil, entity.MappingSubsubcategory, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(17), *e.SubcategoryID)
	assert.Nil(t, e.MainCategoryID)
}

func TestNewStoreCategory_Category(t *testing.T) {
	e, err := entity.NewStoreCategory(7, &entity.Category{ID: 3}, nil, entity.MappingCategory, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(3), *e.MainCategoryID)
	assert.Nil(t, e.SubcategoryID)
}

func TestNewStoreCategory_Subcategory(t *testing.T) {
	e, err := entity.NewStoreCategory(7, &entity.Category{ID: 17, ParentID: id(3)}, nil, entity.MappingSubcategory, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(17), *e.SubcategoryID)
	assert.Equal(t, int64(3), *e.MainCategoryID)
}

func TestNewStoreCategory_NoCompartePunteros(t *testing.T) {
	cat := &entity.Category{ID: 42, ParentID: id(17)}
	e, err := entity.NewStoreCategory(7, cat, nil, entity.MappingSubsubcategory, fixedNow)
	require.NoError(t, err)

	*cat.ParentID = 18
	assert.Equal(t, int64(17), *e.SubcategoryID)
}

func TestNewStoreCategory_TipoInvalido(t *testing.T) {
	_, err := entity.NewStoreCategory(7, &entity.Category{ID: 1}, nil, entity.MappingType("rayon"), fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewStoreCategory(7, nil, nil, entity.MappingSubsubcategory, fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, entity.MappingType("rayon").Valid())
	assert.True(t, entity.MappingSubsubcategory.Valid())
}

func TestStoreCategoryKey_String(t *testing.T) {
	e := &entity.StoreCategory{StoreID: 7, CategoryID: 42, SubcategoryID: id(17), Type: entity.MappingSubsubcategory}
	assert.Equal(t, "7/42/17/null/subsubcategory", e.Key().String())
}
