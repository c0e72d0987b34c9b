package http_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magasin-category-import/internal/application/dto"
	"github.com/jhoicas/magasin-category-import/internal/application/importer"
	"github.com/jhoicas/magasin-category-import/internal/application/usecase"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/csvsource"
	"github.com/jhoicas/magasin-category-import/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/magasin-category-import/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/magasin-category-import/pkg/jwt"
)

type testStack struct {
	app     *fiber.App
	db      *sql.DB
	csvPath string
	logs    *bytes.Buffer
}

// newTestStack levanta la API completa sobre SQLite en un directorio temporal.
func newTestStack(t *testing.T, jwtSecret string) *testStack {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(context.Background(), filepath.Join(dir, "magasins.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`INSERT INTO categories (id, parent_id, name) VALUES
		(3, NULL, 'Maison'), (17, 3, 'Cuisine'), (42, 17, 'Casseroles'), (43, 17, 'Poêles')`)
	require.NoError(t, err)

	csvPath := filepath.Join(dir, "categories.csv")
	mappings := sqlite.NewStoreCategoryRepository(db)
	importUC := importer.NewUseCase(
		csvsource.NewLoader(csvPath),
		sqlite.NewCategoryRepository(db),
		mappings,
		importer.WithClock(func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }),
	)

	logs := &bytes.Buffer{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ImportUC:        importUC,
		StoreCategoryUC: usecase.NewStoreCategoryUseCase(mappings),
		JWTSecret:       jwtSecret,
		Logger:          zerolog.New(logs),
	})
	return &testStack{app: app, db: db, csvPath: csvPath, logs: logs}
}

func (s *testStack) writeCSV(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(s.csvPath, []byte(content), 0o644))
}

func (s *testStack) do(t *testing.T, method, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeImport(t *testing.T, resp *http.Response) dto.ImportResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.ImportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestImport_Exitosa(t *testing.T) {
	s := newTestStack(t, "")
	s.writeCSV(t, "magasin_id,category_id\n7,17\n")

	resp := s.do(t, http.MethodPost, "/api/imports/categories", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeImport(t, resp)

	assert.Equal(t, "Importation terminée avec succès", out.Message)
	require.NotNil(t, out.Summary)
	assert.Equal(t, 1, out.Summary.RowsRead)
	assert.Equal(t, 1, out.Summary.RowsImported)
	assert.Equal(t, 2, out.Summary.EntriesInserted)
	assert.False(t, out.Summary.DryRun)

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM magasin_category WHERE magasin_id = 7`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestImport_ReejecucionNoDuplica(t *testing.T) {
	s := newTestStack(t, "")
	s.writeCSV(t, "magasin_id,category_id\n7,3\n")

	first := decodeImport(t, s.do(t, http.MethodPost, "/api/imports/categories", ""))
	assert.Equal(t, 2, first.Summary.EntriesInserted)

	second := decodeImport(t, s.do(t, http.MethodPost, "/api/imports/categories", ""))
	assert.Equal(t, "Importation terminée avec succès", second.Message)
	assert.Equal(t, 0, second.Summary.EntriesInserted)
	assert.Equal(t, 2, second.Summary.EntriesDuplicate)

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM magasin_category`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestImport_ArchivoInexistente_Retorna404(t *testing.T) {
	s := newTestStack(t, "")

	resp := s.do(t, http.MethodPost, "/api/imports/categories", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"error": "Le fichier CSV est introuvable."}, body)
}

func TestImport_DryRunNoEscribe(t *testing.T) {
	s := newTestStack(t, "")
	s.writeCSV(t, "magasin_id,category_id\n7,17\n7,42\n")

	out := decodeImport(t, s.do(t, http.MethodPost, "/api/imports/categories?dry_run=true", ""))
	assert.True(t, out.Summary.DryRun)
	assert.Equal(t, 3, out.Summary.EntriesPlanned)
	assert.Equal(t, 2, out.Summary.EntriesInserted)
	assert.Equal(t, 1, out.Summary.EntriesDuplicate)

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM magasin_category`).Scan(&n))
	assert.Zero(t, n)
}

func TestImport_FilasInvalidasSeOmiten(t *testing.T) {
	s := newTestStack(t, "")
	s.writeCSV(t, "magasin_id,category_id\n7,42\n,42\n8\n9,999\n")

	out := decodeImport(t, s.do(t, http.MethodPost, "/api/imports/categories", ""))
	assert.Equal(t, 4, out.Summary.RowsRead)
	assert.Equal(t, 1, out.Summary.RowsImported)
	assert.Equal(t, 3, out.Summary.RowsSkipped)
	assert.Equal(t, 1, out.Summary.RowsMissingIDs)
	assert.Equal(t, 1, out.Summary.RowsMalformed)
	assert.Equal(t, 1, out.Summary.CategoriesUnresolved)
}

func TestImport_ErrorDeBaseDeDatos_Retorna500(t *testing.T) {
	s := newTestStack(t, "")
	s.writeCSV(t, "magasin_id,category_id\n7,42\n")
	require.NoError(t, s.db.Close())

	resp := s.do(t, http.MethodPost, "/api/imports/categories", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body.Code)
}

func TestStoreCategories_ListaTrasImportar(t *testing.T) {
	s := newTestStack(t, "")
	s.writeCSV(t, "magasin_id,category_id\n7,17\n8,43\n")
	decodeImport(t, s.do(t, http.MethodPost, "/api/imports/categories", ""))

	resp := s.do(t, http.MethodGet, "/api/stores/7/categories?limit=500", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.StoreCategoryListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(42), out.Items[0].CategoryID)
	assert.Equal(t, int64(17), *out.Items[0].SubcategoryID)
	assert.Equal(t, int64(3), *out.Items[0].MainCategoryID)
	assert.Equal(t, "subsubcategory", out.Items[0].Type)
	assert.Equal(t, 100, out.Page.Limit)
}

func TestStoreCategories_IDInvalido(t *testing.T) {
	s := newTestStack(t, "")

	resp := s.do(t, http.MethodGet, "/api/stores/abc/categories", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_ConJWTExigeAdmin(t *testing.T) {
	s := newTestStack(t, testJWTSecret)
	s.writeCSV(t, "magasin_id,category_id\n7,42\n")

	resp := s.do(t, http.MethodPost, "/api/imports/categories", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/imports/categories", tokenForRole(t, "vendedor"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/imports/categories", tokenForRole(t, pkgjwt.RoleAdmin))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/stores/7/categories", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestImport_RegistraUsuarioDelToken(t *testing.T) {
	s := newTestStack(t, testJWTSecret)
	s.writeCSV(t, "magasin_id,category_id\n7,42\n")

	resp := s.do(t, http.MethodPost, "/api/imports/categories?dry_run=true", tokenForRole(t, pkgjwt.RoleAdmin))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(s.logs.Bytes()), &line))
	assert.Equal(t, "importación solicitada", line["message"])
	assert.Equal(t, testUserID, line["user_id"])
	assert.Equal(t, true, line["dry_run"])
}
