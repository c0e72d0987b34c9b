package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/magasin-category-import/internal/application/importer"
	"github.com/jhoicas/magasin-category-import/internal/domain"
)

type importOptions struct {
	file  string
	apply bool
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Importar el CSV magasin_id,category_id (simulación salvo --apply)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Ruta del CSV (por defecto IMPORT_CSV_PATH)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Escribir en la base (por defecto solo simula)")
	return cmd
}

func runImport(ctx context.Context, out io.Writer, opts importOptions) error {
	s, err := openSession(ctx, opts.file)
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.importer().Run(ctx, !opts.apply)
	if err != nil {
		if errors.Is(err, domain.ErrCSVNotFound) {
			return withCode(exitNotFound, err)
		}
		return withCode(exitDB, err)
	}
	return writeJSON(out, importer.ToSummaryResponse(summary))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
