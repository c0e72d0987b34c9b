package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/magasin-category-import/internal/application/importer"
	"github.com/jhoicas/magasin-category-import/internal/application/usecase"
	"github.com/jhoicas/magasin-category-import/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ImportUC        *importer.UseCase
	StoreCategoryUC *usecase.StoreCategoryUseCase
	JWTSecret       string // vacío = rutas sin autenticación
	Logger          zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api = app.Group("/api", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin))
	}

	importHandler := NewImportHandler(deps.ImportUC, deps.Logger)
	api.Post("/imports/categories", importHandler.Run)

	storeCategoryHandler := NewStoreCategoryHandler(deps.StoreCategoryUC)
	api.Get("/stores/:storeId/categories", storeCategoryHandler.List)
}
