package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Carta-api/internal/application/dto"
	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
	"github.com/jhoicas/Carta-api/internal/infrastructure/tabular"
	apphttp "github.com/jhoicas/Carta-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de persistencia para ejercer el handler de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

type memCatRepo struct {
	byKey map[string]*entity.Category
}

func newMemCatRepo() *memCatRepo { return &memCatRepo{byKey: make(map[string]*entity.Category)} }

func (r *memCatRepo) key(companyID, name string) string {
	return companyID + "/" + strings.ToLower(strings.TrimSpace(name))
}

func (r *memCatRepo) Create(c *entity.Category) error {
	k := r.key(c.CompanyID, c.Name)
	if _, ok := r.byKey[k]; ok {
		return domain.ErrDuplicate
	}
	r.byKey[k] = c
	return nil
}

func (r *memCatRepo) GetByID(id string) (*entity.Category, error) { return nil, nil }

func (r *memCatRepo) GetByCompanyAndName(companyID, name string) (*entity.Category, error) {
	return r.byKey[r.key(companyID, name)], nil
}

func (r *memCatRepo) ListByCompany(companyID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.byKey {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCatRepo) Update(c *entity.Category) error { return nil }
func (r *memCatRepo) Delete(id string) error          { return nil }

type memSubRepo struct {
	byKey map[string]*entity.SubCategory
}

func newMemSubRepo() *memSubRepo { return &memSubRepo{byKey: make(map[string]*entity.SubCategory)} }

func (r *memSubRepo) key(categoryID, name string) string {
	return categoryID + "/" + strings.ToLower(strings.TrimSpace(name))
}

func (r *memSubRepo) Create(s *entity.SubCategory) error {
	k := r.key(s.CategoryID, s.Name)
	if _, ok := r.byKey[k]; ok {
		return domain.ErrDuplicate
	}
	r.byKey[k] = s
	return nil
}

func (r *memSubRepo) GetByID(id string) (*entity.SubCategory, error) { return nil, nil }

func (r *memSubRepo) GetByCategoryAndName(categoryID, name string) (*entity.SubCategory, error) {
	return r.byKey[r.key(categoryID, name)], nil
}

func (r *memSubRepo) ListByCategory(categoryID string) ([]*entity.SubCategory, error) {
	return nil, nil
}

func (r *memSubRepo) Update(s *entity.SubCategory) error { return nil }
func (r *memSubRepo) Delete(id string) error             { return nil }

type memTx struct {
	cats *memCatRepo
	subs *memSubRepo
}

func (t *memTx) RunImport(ctx context.Context, fn func(repository.CategoryRepository, repository.SubCategoryRepository) error) error {
	return fn(t.cats, t.subs)
}

// buildImportApp monta las rutas de carga masiva con el decodificador real y
// persistencia en memoria, tras el middleware de auth.
func buildImportApp(maxUploadBytes int64) (*fiber.App, *memCatRepo, *memSubRepo) {
	cats := newMemCatRepo()
	subs := newMemSubRepo()
	decoder := tabular.NewFileDecoder()
	uc := appmenuimport.NewImportUseCase(decoder, decoder, cats, &memTx{cats: cats, subs: subs}, nil)
	handler := apphttp.NewImportHandler(uc, maxUploadBytes)

	app := fiber.New()
	menu := app.Group("/api/menu", apphttp.AuthMiddleware(testJWTSecret))
	menu.Post("/import", apphttp.RequireRole("admin", "editor"), handler.Import)
	menu.Get("/import/plantilla", handler.Template)
	return app, cats, subs
}

// multipartFile arma un cuerpo multipart con el campo "file".
func multipartFile(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doImport(t *testing.T, app *fiber.App, role, filename string, content []byte) *http.Response {
	t.Helper()
	body, contentType := multipartFile(t, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/api/menu/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const validCSV = "categoria,subcategoria\nBebidas,Jugos\nBebidas,Gaseosas\nPostres,Helados\n"

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestImportHandler_CargaCSVValida(t *testing.T) {
	app, cats, subs := buildImportApp(1 << 20)
	resp := doImport(t, app, "editor", "carta.csv", []byte(validCSV))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.ImportResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 2, result.CategoriesCreated)
	assert.Equal(t, 3, result.SubCategoriesCreated)
	assert.Empty(t, result.Errors)

	assert.Len(t, cats.byKey, 2)
	assert.Len(t, subs.byKey, 3)
}

func TestImportHandler_ErroresDeFilaVanEnElResumen(t *testing.T) {
	csvData := "categoria,subcategoria\nBebidas,Jugos\n,Huérfana\n"
	app, _, _ := buildImportApp(1 << 20)
	resp := doImport(t, app, "admin", "carta.csv", []byte(csvData))
	defer resp.Body.Close()

	// Errores de fila no son errores HTTP: la carga parcial responde 200.
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.ImportResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, 1, result.SubCategoriesCreated)
}

func TestImportHandler_SinArchivo_Retorna400(t *testing.T) {
	app, _, _ := buildImportApp(1 << 20)
	req := httptest.NewRequest(http.MethodPost, "/api/menu/import", strings.NewReader(""))
	req.Header.Set("Authorization", tokenForRole(t, "editor"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestImportHandler_ExtensionNoSoportada_Retorna400(t *testing.T) {
	app, _, _ := buildImportApp(1 << 20)
	resp := doImport(t, app, "editor", "carta.pdf", []byte(validCSV))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNSUPPORTED_FORMAT", body.Code)
}

func TestImportHandler_ArchivoDemasiadoGrande_Retorna413(t *testing.T) {
	app, _, _ := buildImportApp(64) // límite minúsculo para el test
	resp := doImport(t, app, "editor", "carta.csv", []byte(validCSV))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestImportHandler_ArchivoSinFilas_Retorna400(t *testing.T) {
	app, _, _ := buildImportApp(1 << 20)
	resp := doImport(t, app, "editor", "carta.csv", []byte("categoria,subcategoria\n"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "EMPTY_IMPORT", body.Code)
}

func TestImportHandler_SinColumnasRequeridas_Retorna400(t *testing.T) {
	app, _, _ := buildImportApp(1 << 20)
	resp := doImport(t, app, "editor", "carta.csv", []byte("nombre,detalle\nBebidas,Jugos\n"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_FILE", body.Code)
}

func TestImportHandler_LectorNoPuedeImportar(t *testing.T) {
	app, _, _ := buildImportApp(1 << 20)
	resp := doImport(t, app, "lector", "carta.csv", []byte(validCSV))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestImportHandler_ReCorridaIdempotente(t *testing.T) {
	app, cats, subs := buildImportApp(1 << 20)

	resp1 := doImport(t, app, "editor", "carta.csv", []byte(validCSV))
	resp1.Body.Close()
	require.Equal(t, http.StatusOK, resp1.StatusCode)

	resp2 := doImport(t, app, "editor", "carta.csv", []byte(validCSV))
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var result dto.ImportResultResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&result))
	assert.Equal(t, 0, result.CategoriesCreated)
	assert.Equal(t, 2, result.CategoriesMatched)
	assert.Equal(t, 0, result.SubCategoriesCreated)
	assert.Equal(t, 3, result.SubCategoriesDuplicated)

	assert.Len(t, cats.byKey, 2, "repetir el mismo archivo no duplica categorías")
	assert.Len(t, subs.byKey, 3)
}

func TestImportHandler_PlantillaCSV(t *testing.T) {
	app, _, _ := buildImportApp(1 << 20)
	req := httptest.NewRequest(http.MethodGet, "/api/menu/import/plantilla?formato=csv", nil)
	req.Header.Set("Authorization", tokenForRole(t, "lector"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "plantilla_carta.csv")
}

func TestImportHandler_PlantillaFormatoInvalido(t *testing.T) {
	app, _, _ := buildImportApp(1 << 20)
	req := httptest.NewRequest(http.MethodGet, "/api/menu/import/plantilla?formato=pdf", nil)
	req.Header.Set("Authorization", tokenForRole(t, "lector"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
