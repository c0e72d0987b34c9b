package importer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
	"github.com/jhoicas/magasin-category-import/internal/domain/repository"
)

// UseCase importa el CSV magasin → categoría y materializa la jerarquía en magasin_category.
// Cada fila se procesa de forma secuencial e independiente; solo la ausencia del archivo y los
// errores de base de datos interrumpen la ejecución.
type UseCase struct {
	source     RowSource
	categories repository.CategoryRepository
	mappings   repository.StoreCategoryRepository
	now        func() time.Time
	log        zerolog.Logger
	recorder   Recorder
}

// Option configura dependencias opcionales del caso de uso.
type Option func(*UseCase)

// WithClock reemplaza time.Now (created_at / updated_at y marcas del resumen).
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// WithLogger asigna el logger; por defecto no se registra nada.
func WithLogger(log zerolog.Logger) Option {
	return func(uc *UseCase) { uc.log = log }
}

// WithRecorder registra métricas por ejecución.
func WithRecorder(r Recorder) Option {
	return func(uc *UseCase) { uc.recorder = r }
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	source RowSource,
	categories repository.CategoryRepository,
	mappings repository.StoreCategoryRepository,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		source:     source,
		categories: categories,
		mappings:   mappings,
		now:        time.Now,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run ejecuta la importación completa. Con dryRun no se escribe nada: Exists decide qué filas
// se insertarían. Si el archivo no existe el error envuelve domain.ErrCSVNotFound.
// Ante un error de base de datos se devuelve también el resumen parcial.
func (uc *UseCase) Run(ctx context.Context, dryRun bool) (*entity.ImportSummary, error) {
	started := uc.now()
	summary := &entity.ImportSummary{
		RunID:     uuid.NewString(),
		DryRun:    dryRun,
		StartedAt: started,
	}
	log := uc.log.With().Str("run_id", summary.RunID).Bool("dry_run", dryRun).Logger()
	log.Info().Msg("importación de categorías iniciada")

	err := uc.run(ctx, summary, log)
	summary.FinishedAt = uc.now()
	if uc.recorder != nil {
		uc.recorder.ObserveImport(summary, summary.FinishedAt.Sub(started), err)
	}
	if err != nil {
		log.Error().Err(err).Str("file", summary.File).Msg("importación de categorías fallida")
		return summary, err
	}

	log.Info().
		Str("file", summary.File).
		Int("rows_read", summary.RowsRead).
		Int("rows_skipped", summary.RowsSkipped()).
		Int("entries_inserted", summary.EntriesInserted).
		Int("entries_duplicate", summary.EntriesDuplicate).
		Msg("importación de categorías terminada")
	return summary, nil
}

func (uc *UseCase) run(ctx context.Context, summary *entity.ImportSummary, log zerolog.Logger) error {
	batch, err := uc.source.Load(ctx)
	if err != nil {
		return err
	}
	summary.File = batch.Source
	summary.RowsRead = batch.RowsRead
	summary.RowsMalformed = batch.Malformed
	summary.RowsMissingIDs = batch.MissingIDs

	planned := make(map[string]struct{})
	for _, row := range batch.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		storeID, err := parseID(row.StoreID)
		if err != nil {
			summary.RowsMalformed++
			log.Debug().Int("line", row.Line).Str("magasin_id", row.StoreID).Msg("magasin_id no numérico, fila omitida")
			continue
		}
		categoryID, err := parseID(row.CategoryID)
		if err != nil {
			summary.CategoriesUnresolved++
			log.Debug().Int("line", row.Line).Str("category_id", row.CategoryID).Msg("category_id no numérico, fila omitida")
			continue
		}

		entries, found, err := uc.expand(ctx, storeID, categoryID, summary.StartedAt)
		if err != nil {
			return err
		}
		if !found {
			summary.CategoriesUnresolved++
			log.Debug().Int("line", row.Line).Int64("category_id", categoryID).Msg("categoría inexistente, fila omitida")
			continue
		}
		summary.RowsImported++
		summary.EntriesPlanned += len(entries)

		for _, e := range entries {
			written, err := uc.write(ctx, e, summary.DryRun, planned)
			if err != nil {
				return err
			}
			if written {
				summary.EntriesInserted++
			} else {
				summary.EntriesDuplicate++
			}
		}
	}
	return nil
}

// Expand devuelve las filas que generaría el par (magasin, categoría), sin escribirlas.
// Una categoría inexistente produce una lista vacía.
func (uc *UseCase) Expand(ctx context.Context, storeID, categoryID int64) ([]*entity.StoreCategory, error) {
	entries, _, err := uc.expand(ctx, storeID, categoryID, uc.now())
	return entries, err
}

// expand aplica la regla de la jerarquía; solo se generan filas de tipo subsubcategory:
//   - categoría principal: todas las subsubcategorías de cada subcategoría
//   - subcategoría: sus subsubcategorías
//   - subsubcategoría: ella misma
func (uc *UseCase) expand(ctx context.Context, storeID, categoryID int64, now time.Time) ([]*entity.StoreCategory, bool, error) {
	cat, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, false, fmt.Errorf("buscar categoría %d: %w", categoryID, err)
	}
	if cat == nil {
		return nil, false, nil
	}

	var parent *entity.Category
	if !cat.IsRoot() {
		parent, err = uc.categories.GetByID(ctx, *cat.ParentID)
		if err != nil {
			return nil, false, fmt.Errorf("buscar categoría padre %d: %w", *cat.ParentID, err)
		}
	}

	var entries []*entity.StoreCategory
	switch cat.Level(parent) {
	case entity.LevelMain:
		subs, err := uc.categories.ListChildren(ctx, cat.ID)
		if err != nil {
			return nil, false, fmt.Errorf("listar subcategorías de %d: %w", cat.ID, err)
		}
		for _, sub := range subs {
			if entries, err = uc.appendLeaves(ctx, entries, storeID, sub, now); err != nil {
				return nil, false, err
			}
		}
	case entity.LevelSub:
		if entries, err = uc.appendLeaves(ctx, entries, storeID, cat, now); err != nil {
			return nil, false, err
		}
	default:
		e, err := entity.NewStoreCategory(storeID, cat, parent, entity.MappingSubsubcategory, now)
		if err != nil {
			return nil, false, err
		}
		entries = append(entries, e)
	}
	return entries, true, nil
}

// appendLeaves agrega una fila por cada hijo directo de sub.
func (uc *UseCase) appendLeaves(ctx context.Context, entries []*entity.StoreCategory, storeID int64, sub *entity.Category, now time.Time) ([]*entity.StoreCategory, error) {
	children, err := uc.categories.ListChildren(ctx, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("listar subsubcategorías de %d: %w", sub.ID, err)
	}
	for _, child := range children {
		e, err := entity.NewStoreCategory(storeID, child, sub, entity.MappingSubsubcategory, now)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// write inserta la fila salvo que ya exista. En modo simulación solo consulta, y recuerda las
// claves ya planificadas para no contarlas dos veces en la misma ejecución.
func (uc *UseCase) write(ctx context.Context, e *entity.StoreCategory, dryRun bool, planned map[string]struct{}) (bool, error) {
	if !dryRun {
		inserted, err := uc.mappings.InsertIfAbsent(ctx, e)
		if err != nil {
			return false, fmt.Errorf("insertar magasin_category %s: %w", e.Key(), err)
		}
		return inserted, nil
	}

	key := e.Key()
	if _, ok := planned[key.String()]; ok {
		return false, nil
	}
	exists, err := uc.mappings.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("consultar magasin_category %s: %w", key, err)
	}
	if exists {
		return false, nil
	}
	planned[key.String()] = struct{}{}
	return true, nil
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
