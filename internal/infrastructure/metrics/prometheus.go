// Package metrics expone métricas Prometheus de las importaciones.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/magasin-category-import/internal/domain"
	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
)

// ImportMetrics implementa importer.Recorder.
type ImportMetrics struct {
	runs     *prometheus.CounterVec
	rows     *prometheus.CounterVec
	entries  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewImportMetrics registra las métricas en reg (prometheus.DefaultRegisterer en producción).
func NewImportMetrics(reg prometheus.Registerer) *ImportMetrics {
	factory := promauto.With(reg)
	return &ImportMetrics{
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_import_runs_total",
				Help: "Ejecuciones de importación por resultado",
			},
			[]string{"status", "mode"},
		),
		rows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_import_rows_total",
				Help: "Filas CSV procesadas por resultado",
			},
			[]string{"outcome"},
		),
		entries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_import_entries_total",
				Help: "Filas magasin_category derivadas por resultado",
			},
			[]string{"result"},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "category_import_duration_seconds",
				Help:    "Duración de cada importación",
				Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
		),
	}
}

// ObserveImport registra una ejecución.
func (m *ImportMetrics) ObserveImport(s *entity.ImportSummary, d time.Duration, err error) {
	mode := "apply"
	if s != nil && s.DryRun {
		mode = "dry_run"
	}
	m.runs.WithLabelValues(runStatus(err), mode).Inc()
	m.duration.Observe(d.Seconds())
	if s == nil {
		return
	}
	m.rows.WithLabelValues("imported").Add(float64(s.RowsImported))
	m.rows.WithLabelValues("malformed").Add(float64(s.RowsMalformed))
	m.rows.WithLabelValues("missing_ids").Add(float64(s.RowsMissingIDs))
	m.rows.WithLabelValues("unresolved").Add(float64(s.CategoriesUnresolved))
	if s.DryRun {
		return
	}
	m.entries.WithLabelValues("inserted").Add(float64(s.EntriesInserted))
	m.entries.WithLabelValues("duplicate").Add(float64(s.EntriesDuplicate))
}

func runStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrCSVNotFound):
		return "not_found"
	default:
		return "error"
	}
}
