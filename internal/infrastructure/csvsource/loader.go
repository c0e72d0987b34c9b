// Package csvsource lee el archivo CSV que asocia magasins con categorías.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/jhoicas/magasin-category-import/internal/domain"
	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Columnas obligatorias del encabezado.
const (
	ColumnStoreID    = "magasin_id"
	ColumnCategoryID = "category_id"
)

// Loader lee un archivo CSV desde una ruta fija.
type Loader struct {
	path string
}

// NewLoader construye el lector para la ruta configurada.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path ruta del archivo.
func (l *Loader) Path() string {
	return l.path
}

// Load abre y parsea el archivo. Si no existe devuelve domain.ErrCSVNotFound.
func (l *Loader) Load(ctx context.Context) (*entity.ImportBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCSVNotFound, l.path)
		}
		return nil, fmt.Errorf("abrir CSV %s: %w", l.path, err)
	}
	defer f.Close()

	batch, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("leer CSV %s: %w", l.path, err)
	}
	batch.Source = l.path
	return batch, nil
}

// Parse quita un BOM UTF-8 inicial, separa por "\n" y parsea cada línea de forma independiente.
// La primera línea es el encabezado. Las líneas de datos con un número de campos distinto al
// encabezado, o sin magasin_id / category_id, se descartan y solo se cuentan.
func Parse(r io.Reader) (*entity.ImportBatch, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return nil, err
	}

	batch := &entity.ImportBatch{}
	lines := strings.Split(string(data), "\n")

	header, _ := splitLine(strings.TrimSuffix(lines[0], "\r"))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	for i, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		batch.RowsRead++

		fields, ok := splitLine(line)
		if !ok || len(fields) != len(header) {
			batch.Malformed++
			continue
		}

		record := make(map[string]string, len(header))
		for j, name := range header {
			record[name] = fields[j]
		}
		storeID := strings.TrimSpace(record[ColumnStoreID])
		categoryID := strings.TrimSpace(record[ColumnCategoryID])
		if storeID == "" || categoryID == "" {
			batch.MissingIDs++
			continue
		}

		batch.Rows = append(batch.Rows, entity.ImportRow{
			Line:       i + 2,
			StoreID:    storeID,
			CategoryID: categoryID,
		})
	}
	return batch, nil
}

// splitLine tokeniza una sola línea separada por comas, con soporte de comillas.
func splitLine(line string) ([]string, bool) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	fields, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, true
		}
		return nil, false
	}
	return fields, true
}
