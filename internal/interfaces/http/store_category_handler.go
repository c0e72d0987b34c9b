package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magasin-category-import/internal/application/dto"
	"github.com/jhoicas/magasin-category-import/internal/application/usecase"
)

// StoreCategoryHandler consulta de magasin_category.
type StoreCategoryHandler struct {
	uc *usecase.StoreCategoryUseCase
}

// NewStoreCategoryHandler construye el handler.
func NewStoreCategoryHandler(uc *usecase.StoreCategoryUseCase) *StoreCategoryHandler {
	return &StoreCategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías de un magasin
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        storeId  path   int  true   "ID del magasin"
// @Param        limit    query  int  false  "Límite"  default(20)
// @Param        offset   query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.StoreCategoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeId}/categories [get]
func (h *StoreCategoryHandler) List(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "storeId debe ser un entero positivo"})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.UserContext(), int64(storeID), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
