package usecase

import (
	"context"

	"github.com/jhoicas/magasin-category-import/internal/application/dto"
	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
	"github.com/jhoicas/magasin-category-import/internal/domain/repository"
)

// StoreCategoryUseCase consulta de las categorías materializadas por magasin.
type StoreCategoryUseCase struct {
	repo repository.StoreCategoryRepository
}

// NewStoreCategoryUseCase construye el caso de uso.
func NewStoreCategoryUseCase(repo repository.StoreCategoryRepository) *StoreCategoryUseCase {
	return &StoreCategoryUseCase{repo: repo}
}

// List lista las filas de un magasin con paginación.
func (uc *StoreCategoryUseCase) List(ctx context.Context, storeID int64, limit, offset int) (*dto.StoreCategoryListResponse, error) {
	list, err := uc.repo.ListByStore(ctx, storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreCategoryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, ToStoreCategoryResponse(e))
	}
	return &dto.StoreCategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ToStoreCategoryResponse convierte la entidad al DTO de salida.
func ToStoreCategoryResponse(e *entity.StoreCategory) dto.StoreCategoryResponse {
	return dto.StoreCategoryResponse{
		StoreID:        e.StoreID,
		CategoryID:     e.CategoryID,
		SubcategoryID:  e.SubcategoryID,
		MainCategoryID: e.MainCategoryID,
		Type:           string(e.Type),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
