package menuimport_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
	dommenuimport "github.com/jhoicas/Carta-api/internal/domain/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore implementa CategoryRepository y SubCategoryRepository en memoria,
// con unicidad por nombre sin distinguir mayúsculas, igual que los índices de la DB.
type fakeStore struct {
	categories map[string]*entity.Category    // clave: companyID + "/" + lower(name)
	subs       map[string]*entity.SubCategory // clave: categoryID + "/" + lower(name)

	failCreateCategory error // si no es nil, el próximo Create de categoría falla con este error
	insertOnConflict   bool  // simula a otro escritor ganando la carrera del índice único
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: make(map[string]*entity.Category),
		subs:       make(map[string]*entity.SubCategory),
	}
}

func catKey(companyID, name string) string {
	return companyID + "/" + strings.ToLower(strings.TrimSpace(name))
}

func subKey(categoryID, name string) string {
	return categoryID + "/" + strings.ToLower(strings.TrimSpace(name))
}

func (s *fakeStore) Create(category *entity.Category) error {
	if s.failCreateCategory != nil {
		err := s.failCreateCategory
		s.failCreateCategory = nil
		if s.insertOnConflict {
			// El otro escritor persiste su propia versión con otro ID.
			other := *category
			other.ID = "ganador-" + category.Name
			s.categories[catKey(category.CompanyID, category.Name)] = &other
		}
		return err
	}
	key := catKey(category.CompanyID, category.Name)
	if _, ok := s.categories[key]; ok {
		return domain.ErrDuplicate
	}
	cp := *category
	s.categories[key] = &cp
	return nil
}

func (s *fakeStore) GetByID(id string) (*entity.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) GetByCompanyAndName(companyID, name string) (*entity.Category, error) {
	return s.categories[catKey(companyID, name)], nil
}

func (s *fakeStore) ListByCompany(companyID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range s.categories {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeStore) Update(category *entity.Category) error { return nil }
func (s *fakeStore) Delete(id string) error                 { return nil }

// subRepo adapta fakeStore al puerto SubCategoryRepository.
type subRepo struct {
	store         *fakeStore
	failSubCreate error
}

func (r *subRepo) Create(sub *entity.SubCategory) error {
	if r.failSubCreate != nil {
		return r.failSubCreate
	}
	key := subKey(sub.CategoryID, sub.Name)
	if _, ok := r.store.subs[key]; ok {
		return domain.ErrDuplicate
	}
	cp := *sub
	r.store.subs[key] = &cp
	return nil
}

func (r *subRepo) GetByID(id string) (*entity.SubCategory, error) { return nil, nil }

func (r *subRepo) GetByCategoryAndName(categoryID, name string) (*entity.SubCategory, error) {
	return r.store.subs[subKey(categoryID, name)], nil
}

func (r *subRepo) ListByCategory(categoryID string) ([]*entity.SubCategory, error) {
	var out []*entity.SubCategory
	for _, s := range r.store.subs {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *subRepo) Update(sub *entity.SubCategory) error { return nil }
func (r *subRepo) Delete(id string) error               { return nil }

// fakeTx ejecuta el callback con los mismos repos en memoria, sin transacción real.
type fakeTx struct {
	cats *fakeStore
	subs *subRepo
}

func (t *fakeTx) RunImport(ctx context.Context, fn func(repository.CategoryRepository, repository.SubCategoryRepository) error) error {
	return fn(t.cats, t.subs)
}

// fakeDecoder devuelve filas enlatadas o un error fijo, ignorando los bytes.
type fakeDecoder struct {
	rows []dommenuimport.ImportRow
	err  error
}

func (d *fakeDecoder) Decode(data []byte, format appmenuimport.Format) ([]dommenuimport.ImportRow, error) {
	return d.rows, d.err
}

func (d *fakeDecoder) Template(format appmenuimport.Format) ([]byte, string, error) {
	return []byte("plantilla"), "plantilla_carta.csv", nil
}

func buildUseCase(store *fakeStore, decoder *fakeDecoder) (*appmenuimport.ImportUseCase, *subRepo) {
	subs := &subRepo{store: store}
	tx := &fakeTx{cats: store, subs: subs}
	uc := appmenuimport.NewImportUseCase(decoder, decoder, store, tx, nil)
	return uc, subs
}

const testCompany = "rest-1"

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_CargaInicial_PersisteYReporta(t *testing.T) {
	store := newFakeStore()
	uc, _ := buildUseCase(store, &fakeDecoder{rows: []dommenuimport.ImportRow{
		{Row: 1, Categoria: "Bebidas", Subcategoria: "Jugos"},
		{Row: 2, Categoria: "Bebidas", Subcategoria: "Gaseosas"},
		{Row: 3, Categoria: "Postres", Subcategoria: "Helados"},
	}})

	result, err := uc.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.CategoriesCreated)
	assert.Equal(t, 0, result.CategoriesMatched)
	assert.Equal(t, 3, result.SubCategoriesCreated)
	assert.Equal(t, 0, result.SubCategoriesDuplicated)
	assert.Empty(t, result.Errors)

	assert.Len(t, store.categories, 2)
	assert.Len(t, store.subs, 3)

	// Toda subcategoría persistida apunta a una categoría persistida de la empresa.
	for _, sub := range store.subs {
		parent, err := store.GetByID(sub.CategoryID)
		require.NoError(t, err)
		require.NotNil(t, parent, "subcategoría %q sin padre persistido", sub.Name)
		assert.Equal(t, testCompany, parent.CompanyID)
	}
}

func TestImport_ReCorrida_EsIdempotente(t *testing.T) {
	rows := []dommenuimport.ImportRow{
		{Row: 1, Categoria: "Bebidas", Subcategoria: "Jugos"},
		{Row: 2, Categoria: "Postres", Subcategoria: "Helados"},
	}
	store := newFakeStore()
	uc, _ := buildUseCase(store, &fakeDecoder{rows: rows})

	first, err := uc.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, first.SubCategoriesCreated)

	second, err := uc.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.NoError(t, err)

	// Segunda corrida: nada nuevo, todo reclasificado.
	assert.Equal(t, 0, second.CategoriesCreated)
	assert.Equal(t, 2, second.CategoriesMatched)
	assert.Equal(t, 0, second.SubCategoriesCreated)
	assert.Equal(t, 2, second.SubCategoriesDuplicated)
	assert.Len(t, second.Duplicates, 2)

	// El almacenamiento no cambió.
	assert.Len(t, store.categories, 2)
	assert.Len(t, store.subs, 2)
}

func TestImport_ReCorridaConOtraGrafia_NoDuplicaFilas(t *testing.T) {
	store := newFakeStore()
	uc, _ := buildUseCase(store, &fakeDecoder{rows: []dommenuimport.ImportRow{
		{Row: 1, Categoria: "Bebidas", Subcategoria: "Jugos"},
	}})
	_, err := uc.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.NoError(t, err)

	uc2, _ := buildUseCase(store, &fakeDecoder{rows: []dommenuimport.ImportRow{
		{Row: 1, Categoria: "BEBIDAS", Subcategoria: "JUGOS"},
	}})
	result, err := uc2.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.CategoriesMatched)
	assert.Equal(t, 1, result.SubCategoriesDuplicated)
	assert.Len(t, store.categories, 1, "la otra grafía no debe crear una segunda categoría")
	assert.Len(t, store.subs, 1)
}

func TestImport_ErroresDeFila_NoAbortanLaCarga(t *testing.T) {
	store := newFakeStore()
	uc, _ := buildUseCase(store, &fakeDecoder{rows: []dommenuimport.ImportRow{
		{Row: 1, Categoria: "Bebidas", Subcategoria: "Jugos"},
		{Row: 2, Categoria: "", Subcategoria: "Huérfana"},
	}})
	result, err := uc.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, 1, result.SubCategoriesCreated)
	assert.Len(t, store.subs, 1)
}

func TestImport_DecodificacionFallida_AbortaSinResultado(t *testing.T) {
	store := newFakeStore()
	uc, _ := buildUseCase(store, &fakeDecoder{err: domain.ErrArchivoInvalido})

	result, err := uc.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArchivoInvalido))
	assert.Nil(t, result)
	assert.Empty(t, store.categories)
}

func TestImport_ArchivoSinFilas_EsFatal(t *testing.T) {
	store := newFakeStore()
	uc, _ := buildUseCase(store, &fakeDecoder{rows: nil})

	result, err := uc.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrImportVacio))
	assert.Nil(t, result)
}

func TestImport_FalloDeAlmacenamiento_AbortaLaCarga(t *testing.T) {
	store := newFakeStore()
	uc, subs := buildUseCase(store, &fakeDecoder{rows: []dommenuimport.ImportRow{
		{Row: 1, Categoria: "Bebidas", Subcategoria: "Jugos"},
	}})
	subs.failSubCreate = errors.New("conexión perdida")

	result, err := uc.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolver importación")
	assert.Nil(t, result, "un fallo de almacenamiento no produce resultado parcial")
}

func TestImport_CarreraEnIndiceUnico_ReusaCategoriaGanadora(t *testing.T) {
	store := newFakeStore()
	store.failCreateCategory = domain.ErrDuplicate
	store.insertOnConflict = true

	uc, _ := buildUseCase(store, &fakeDecoder{rows: []dommenuimport.ImportRow{
		{Row: 1, Categoria: "Bebidas", Subcategoria: "Jugos"},
		{Row: 2, Categoria: "Bebidas", Subcategoria: "Gaseosas"},
	}})
	result, err := uc.Import(context.Background(), testCompany, appmenuimport.FormatCSV, nil)
	require.NoError(t, err)

	// La categoría no se cuenta como creada: la creó el otro escritor.
	assert.Equal(t, 0, result.CategoriesCreated)
	assert.Equal(t, 1, result.CategoriesMatched)
	assert.Equal(t, 2, result.SubCategoriesCreated)

	// Las subcategorías quedaron atadas al ID ganador, no al UUID provisional.
	for _, sub := range store.subs {
		assert.Equal(t, "ganador-Bebidas", sub.CategoryID)
	}
}

func TestTemplate_DelegaAlGenerador(t *testing.T) {
	uc, _ := buildUseCase(newFakeStore(), &fakeDecoder{})
	data, filename, err := uc.Template(appmenuimport.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "plantilla_carta.csv", filename)
	assert.NotEmpty(t, data)
}
