package dto

import "time"

// Mensajes devueltos por el endpoint de importación (contrato existente, en francés).
const (
	ImportSuccessMessage  = "Importation terminée avec succès"
	ImportNotFoundMessage = "Le fichier CSV est introuvable."
)

// ImportResponse respuesta de una importación terminada.
type ImportResponse struct {
	Message string                 `json:"message"`
	Summary *ImportSummaryResponse `json:"summary,omitempty"`
}

// ImportErrorResponse cuerpo cuando el archivo CSV no existe.
type ImportErrorResponse struct {
	Error string `json:"error"`
}

// ImportSummaryResponse contadores de una ejecución.
type ImportSummaryResponse struct {
	RunID                string    `json:"run_id"`
	File                 string    `json:"file"`
	DryRun               bool      `json:"dry_run"`
	StartedAt            time.Time `json:"started_at"`
	FinishedAt           time.Time `json:"finished_at"`
	RowsRead             int       `json:"rows_read"`
	RowsImported         int       `json:"rows_imported"`
	RowsSkipped          int       `json:"rows_skipped"`
	RowsMalformed        int       `json:"rows_malformed"`
	RowsMissingIDs       int       `json:"rows_missing_ids"`
	CategoriesUnresolved int       `json:"categories_unresolved"`
	EntriesPlanned       int       `json:"entries_planned"`
	EntriesInserted      int       `json:"entries_inserted"`
	EntriesDuplicate     int       `json:"entries_duplicate"`
}
