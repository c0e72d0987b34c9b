package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/magasin-category-import/internal/application/dto"
	"github.com/jhoicas/magasin-category-import/internal/application/importer"
	"github.com/jhoicas/magasin-category-import/internal/domain"
)

// ImportHandler dispara la importación del CSV magasin → categoría.
type ImportHandler struct {
	uc  *importer.UseCase
	log zerolog.Logger
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.UseCase, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{uc: uc, log: log}
}

// Run godoc
// @Summary      Importar categorías de magasins desde el CSV configurado
// @Tags         imports
// @Security     Bearer
// @Produce      json
// @Param        dry_run  query  bool  false  "Simular sin escribir"  default(false)
// @Success      200  {object}  dto.ImportResponse
// @Failure      404  {object}  dto.ImportErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/imports/categories [post]
func (h *ImportHandler) Run(c *fiber.Ctx) error {
	dryRun := c.QueryBool("dry_run", false)
	// user_id vacío cuando las rutas no exigen JWT
	h.log.Info().Str("user_id", GetUserID(c)).Bool("dry_run", dryRun).Msg("importación solicitada")
	summary, err := h.uc.Run(c.UserContext(), dryRun)
	if err != nil {
		if errors.Is(err, domain.ErrCSVNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ImportErrorResponse{Error: dto.ImportNotFoundMessage})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImportResponse{
		Message: dto.ImportSuccessMessage,
		Summary: importer.ToSummaryResponse(summary),
	})
}
