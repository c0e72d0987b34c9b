package entity

import "time"

// ImportRow par (magasin_id, category_id) leído de una línea de datos del CSV.
// Los valores se conservan como texto; la conversión a ID ocurre en el importador.
type ImportRow struct {
	Line       int // número de línea en el archivo (1 = encabezado)
	StoreID    string
	CategoryID string
}

// ImportSummary resultado de una ejecución de importación.
// Los contadores son informativos: no cambian el estado ni el mensaje devuelto al cliente.
type ImportSummary struct {
	RunID      string
	File       string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time

	RowsRead             int // líneas de datos leídas (sin el encabezado)
	RowsImported         int // filas cuyo category_id se resolvió
	RowsMalformed        int // número de campos distinto al encabezado o magasin_id no numérico
	RowsMissingIDs       int // magasin_id o category_id ausente o vacío
	CategoriesUnresolved int // category_id no numérico o inexistente

	EntriesPlanned   int // filas derivadas de la jerarquía
	EntriesInserted  int
	EntriesDuplicate int // ya existían
}

// RowsSkipped total de filas descartadas sin error.
func (s *ImportSummary) RowsSkipped() int {
	return s.RowsMalformed + s.RowsMissingIDs + s.CategoriesUnresolved
}

// ImportBatch filas válidas de un archivo más los contadores de líneas descartadas por el lector.
type ImportBatch struct {
	Source     string
	Rows       []ImportRow
	RowsRead   int // líneas de datos no vacías
	Malformed  int
	MissingIDs int
}
