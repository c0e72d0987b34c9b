package importer_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
)

type fakeSource struct {
	batch *entity.ImportBatch
	err   error
}

func (s *fakeSource) Load(context.Context) (*entity.ImportBatch, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.batch, nil
}

// rows construye un lote a partir de pares (magasin_id, category_id).
func rows(pairs ...[2]string) *entity.ImportBatch {
	b := &entity.ImportBatch{Source: "categories.csv", RowsRead: len(pairs)}
	for i, p := range pairs {
		b.Rows = append(b.Rows, entity.ImportRow{Line: i + 2, StoreID: p[0], CategoryID: p[1]})
	}
	return b
}

type fakeCategories struct {
	byID map[int64]*entity.Category
	err  error
}

func newFakeCategories(cats ...*entity.Category) *fakeCategories {
	f := &fakeCategories{byID: make(map[int64]*entity.Category)}
	for _, c := range cats {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCategories) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeCategories) ListChildren(_ context.Context, parentID int64) ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Category
	for _, c := range f.byID {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMappings struct {
	rows        map[string]*entity.StoreCategory
	order       []*entity.StoreCategory
	insertCalls int
	existsCalls int
	err         error
}

func newFakeMappings() *fakeMappings {
	return &fakeMappings{rows: make(map[string]*entity.StoreCategory)}
}

func (f *fakeMappings) Exists(_ context.Context, key entity.StoreCategoryKey) (bool, error) {
	f.existsCalls++
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.rows[key.String()]
	return ok, nil
}

func (f *fakeMappings) InsertIfAbsent(_ context.Context, e *entity.StoreCategory) (bool, error) {
	f.insertCalls++
	if f.err != nil {
		return false, f.err
	}
	k := e.Key().String()
	if _, ok := f.rows[k]; ok {
		return false, nil
	}
	f.rows[k] = e
	f.order = append(f.order, e)
	return true, nil
}

func (f *fakeMappings) ListByStore(_ context.Context, storeID int64, limit, offset int) ([]*entity.StoreCategory, error) {
	var out []*entity.StoreCategory
	for _, e := range f.order {
		if e.StoreID == storeID {
			out = append(out, e)
		}
	}
	return out, nil
}

type recordedRun struct {
	summary  *entity.ImportSummary
	duration time.Duration
	err      error
}

type fakeRecorder struct {
	runs []recordedRun
}

func (r *fakeRecorder) ObserveImport(s *entity.ImportSummary, d time.Duration, err error) {
	r.runs = append(r.runs, recordedRun{summary: s, duration: d, err: err})
}
