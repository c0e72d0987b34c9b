package importer

import (
	"context"
	"time"

	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
)

// RowSource entrega las filas (magasin_id, category_id) de un archivo de importación.
// Lo implementa *csvsource.Loader.
type RowSource interface {
	Load(ctx context.Context) (*entity.ImportBatch, error)
}

// Recorder recibe el resultado de cada ejecución (métricas). err es nil si terminó bien.
type Recorder interface {
	ObserveImport(summary *entity.ImportSummary, duration time.Duration, err error)
}
