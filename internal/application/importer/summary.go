package importer

import (
	"github.com/jhoicas/magasin-category-import/internal/application/dto"
	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
)

// ToSummaryResponse convierte el resumen de dominio al DTO HTTP/CLI.
func ToSummaryResponse(s *entity.ImportSummary) *dto.ImportSummaryResponse {
	if s == nil {
		return nil
	}
	return &dto.ImportSummaryResponse{
		RunID:                s.RunID,
		File:                 s.File,
		DryRun:               s.DryRun,
		StartedAt:            s.StartedAt,
		FinishedAt:           s.FinishedAt,
		RowsRead:             s.RowsRead,
		RowsImported:         s.RowsImported,
		RowsSkipped:          s.RowsSkipped(),
		RowsMalformed:        s.RowsMalformed,
		RowsMissingIDs:       s.RowsMissingIDs,
		CategoriesUnresolved: s.CategoriesUnresolved,
		EntriesPlanned:       s.EntriesPlanned,
		EntriesInserted:      s.EntriesInserted,
		EntriesDuplicate:     s.EntriesDuplicate,
	}
}
