package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/magasin-category-import/internal/application/dto"
	"github.com/jhoicas/magasin-category-import/internal/application/usecase"
)

type expandOptions struct {
	storeID    int64
	categoryID int64
}

func newExpandCmd() *cobra.Command {
	var opts expandOptions

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Mostrar las filas magasin_category que generaría un par (magasin, categoría)",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.storeID <= 0 || opts.categoryID <= 0 {
				return withCode(exitUsage, fmt.Errorf("--store y --category deben ser enteros positivos"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Int64Var(&opts.storeID, "store", 0, "ID del magasin (requerido)")
	cmd.Flags().Int64Var(&opts.categoryID, "category", 0, "ID de la categoría (requerido)")
	return cmd
}

func runExpand(ctx context.Context, out io.Writer, opts expandOptions) error {
	s, err := openSession(ctx, "")
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.importer().Expand(ctx, opts.storeID, opts.categoryID)
	if err != nil {
		return withCode(exitDB, err)
	}
	items := make([]dto.StoreCategoryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, usecase.ToStoreCategoryResponse(e))
	}
	return writeJSON(out, items)
}
