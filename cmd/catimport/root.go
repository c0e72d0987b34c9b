package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/magasin-category-import/internal/application/importer"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/csvsource"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/persistence"
	"github.com/jhoicas/magasin-category-import/pkg/config"
	"github.com/jhoicas/magasin-category-import/pkg/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "catimport",
		Short:         "Importación CSV magasin → categoría (magasin_category)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(exitUsage, err)
	})

	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newExpandCmd())
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, err.Error())
		stop()
		os.Exit(code)
	}
}

// session configuración, logger y repositorios abiertos para un comando.
type session struct {
	cfg    *config.Config
	log    *logger.Logger
	stores *persistence.Stores
}

// openSession carga la configuración y abre la base. csvPath vacío usa IMPORT_CSV_PATH.
// Los logs van a stderr para dejar stdout al resultado JSON.
func openSession(ctx context.Context, csvPath string) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, withCode(exitUsage, fmt.Errorf("cargar configuración: %w", err))
	}
	if csvPath != "" {
		cfg.Import.CSVPath = csvPath
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	stores, err := persistence.Open(ctx, cfg.DB)
	if err != nil {
		return nil, withCode(exitDB, err)
	}
	return &session{cfg: cfg, log: log, stores: stores}, nil
}

func (s *session) importer() *importer.UseCase {
	loader := csvsource.NewLoader(s.cfg.Import.CSVPath)
	s.log.Debug().Str("csv_path", loader.Path()).Str("db_driver", s.cfg.DB.Driver).Msg("sesión abierta")
	return importer.NewUseCase(
		loader,
		s.stores.Categories,
		s.stores.Mappings,
		importer.WithLogger(s.log.Component("importer")),
	)
}

func (s *session) Close() {
	s.stores.Close()
}
