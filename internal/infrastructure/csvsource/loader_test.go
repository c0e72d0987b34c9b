package csvsource_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magasin-category-import/internal/domain"
	"github.com/jhoicas/magasin-category-import/internal/domain/entity"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/csvsource"
)

const bom = "\xEF\xBB\xBF"

func parse(t *testing.T, content string) *entity.ImportBatch {
	t.Helper()
	batch, err := csvsource.Parse(strings.NewReader(content))
	require.NoError(t, err)
	return batch
}

func TestParse_FilasValidas(t *testing.T) {
	batch := parse(t, "magasin_id,category_id\n7,42\n8,1\n")

	require.Len(t, batch.Rows, 2)
	assert.Equal(t, entity.ImportRow{Line: 2, StoreID: "7", CategoryID: "42"}, batch.Rows[0])
	assert.Equal(t, entity.ImportRow{Line: 3, StoreID: "8", CategoryID: "1"}, batch.Rows[1])
	assert.Equal(t, 2, batch.RowsRead)
	assert.Zero(t, batch.Malformed)
	assert.Zero(t, batch.MissingIDs)
}

func TestParse_BOMSeIgnora(t *testing.T) {
	content := "magasin_id,category_id\n7,42\n"
	withBOM := parse(t, bom+content)
	without := parse(t, content)

	assert.Equal(t, without.Rows, withBOM.Rows, "un archivo con BOM debe parsearse igual que sin BOM")
	require.Len(t, withBOM.Rows, 1)
}

func TestParse_SoloSeQuitaUnBOM(t *testing.T) {
	// El segundo BOM queda pegado al nombre de la primera columna: magasin_id no se encuentra.
	batch := parse(t, bom+bom+"magasin_id,category_id\n7,42\n")

	assert.Empty(t, batch.Rows)
	assert.Equal(t, 1, batch.MissingIDs)
}

func TestParse_FilaConCamposDistintosSeDescarta(t *testing.T) {
	batch := parse(t, "magasin_id,category_id\n7,42,extra\n8\n9,10\n")

	require.Len(t, batch.Rows, 1, "las filas malformadas no deben abortar el resto")
	assert.Equal(t, "9", batch.Rows[0].StoreID)
	assert.Equal(t, 2, batch.Malformed)
	assert.Equal(t, 3, batch.RowsRead)
}

func TestParse_ColumnaFaltante(t *testing.T) {
	batch := parse(t, "store,category_id\n7,42\n")

	assert.Empty(t, batch.Rows)
	assert.Equal(t, 1, batch.MissingIDs)
}

func TestParse_ValorVacio(t *testing.T) {
	batch := parse(t, "magasin_id,category_id\n,42\n7,  \n7,43\n")

	require.Len(t, batch.Rows, 1)
	assert.Equal(t, "43", batch.Rows[0].CategoryID)
	assert.Equal(t, 2, batch.MissingIDs)
}

func TestParse_ColumnasExtraYOrden(t *testing.T) {
	batch := parse(t, "nom,category_id,magasin_id\n\"Rayon, frais\",42,7\n")

	require.Len(t, batch.Rows, 1)
	assert.Equal(t, "7", batch.Rows[0].StoreID)
	assert.Equal(t, "42", batch.Rows[0].CategoryID)
}

func TestParse_CRLFYLineasVacias(t *testing.T) {
	batch := parse(t, "magasin_id,category_id\r\n7,42\r\n\r\n8,43\r\n")

	require.Len(t, batch.Rows, 2)
	assert.Equal(t, "42", batch.Rows[0].CategoryID)
	assert.Equal(t, "43", batch.Rows[1].CategoryID)
	assert.Equal(t, 4, batch.Rows[1].Line)
	assert.Equal(t, 2, batch.RowsRead, "las líneas vacías no se cuentan")
}

func TestParse_EncabezadoConEspacios(t *testing.T) {
	batch := parse(t, " magasin_id , category_id \n7,42\n")

	require.Len(t, batch.Rows, 1)
}

func TestParse_ArchivoVacio(t *testing.T) {
	batch := parse(t, "")
	assert.Empty(t, batch.Rows)
	assert.Zero(t, batch.RowsRead)

	batch = parse(t, "magasin_id,category_id\n")
	assert.Empty(t, batch.Rows)
}

func TestLoader_ArchivoInexistente(t *testing.T) {
	loader := csvsource.NewLoader(filepath.Join(t.TempDir(), "categories.csv"))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCSVNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoader_LeeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.csv")
	require.NoError(t, os.WriteFile(path, []byte(bom+"magasin_id,category_id\n7,42\n"), 0o600))

	loader := csvsource.NewLoader(path)
	assert.Equal(t, path, loader.Path())

	batch, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, loader.Path(), batch.Source)
	require.Len(t, batch.Rows, 1)
	assert.Equal(t, "7", batch.Rows[0].StoreID)
}

func TestLoader_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := csvsource.NewLoader("no-importa.csv").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
