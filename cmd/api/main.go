package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/magasin-category-import/docs"
	"github.com/jhoicas/magasin-category-import/internal/application/importer"
	"github.com/jhoicas/magasin-category-import/internal/application/usecase"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/csvsource"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/metrics"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/persistence"
	httpRouter "github.com/jhoicas/magasin-category-import/internal/interfaces/http"
	"github.com/jhoicas/magasin-category-import/pkg/config"
	"github.com/jhoicas/magasin-category-import/pkg/logger"
)

// @title        Magasin Category Import API
// @version      1.0
// @description  Importación CSV magasin → categoría y consulta de magasin_category.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	stores, err := persistence.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("apertura de la base de datos")
	}
	defer stores.Close()

	loader := csvsource.NewLoader(cfg.Import.CSVPath)
	log.Info().Str("csv_path", loader.Path()).Msg("archivo de importación configurado")

	importUC := importer.NewUseCase(
		loader,
		stores.Categories,
		stores.Mappings,
		importer.WithLogger(log.Component("importer")),
		importer.WithRecorder(metrics.NewImportMetrics(prometheus.DefaultRegisterer)),
	)
	storeCategoryUC := usecase.NewStoreCategoryUseCase(stores.Mappings)

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: rutas /api sin autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		// una importación grande puede tardar minutos
		WriteTimeout: time.Minute * 5,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Magasin Category Import API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ImportUC:        importUC,
		StoreCategoryUC: storeCategoryUC,
		JWTSecret:       cfg.JWT.Secret,
		Logger:          log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
