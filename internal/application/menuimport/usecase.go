package menuimport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Carta-api/internal/application/dto"
	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
	dommenuimport "github.com/jhoicas/Carta-api/internal/domain/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
	"github.com/jhoicas/Carta-api/pkg/logger"
)

// ImportUseCase orquesta la carga masiva: decodificar → reconciliar en memoria
// → resolver contra persistencia dentro de una transacción.
//
// Los errores de fila nunca abortan la carga (viajan en el resultado); un
// fallo de decodificación o de almacenamiento sí aborta toda la petición sin
// resultado parcial. Repetir una carga fallida es seguro: la creación de
// categorías y subcategorías es idempotente por clave natural.
type ImportUseCase struct {
	decoder  RowDecoder
	template TemplateGenerator
	catRepo  repository.CategoryRepository
	tx       ImportTxRunner
	log      *logger.Logger
}

// NewImportUseCase construye el caso de uso. log puede ser nil.
func NewImportUseCase(decoder RowDecoder, template TemplateGenerator, catRepo repository.CategoryRepository, tx ImportTxRunner, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{decoder: decoder, template: template, catRepo: catRepo, tx: tx, log: log}
}

// Import procesa un archivo de carta para la empresa indicada.
func (uc *ImportUseCase) Import(ctx context.Context, companyID string, format Format, data []byte) (*dto.ImportResultResponse, error) {
	rows, err := uc.decoder.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decodificar archivo: %w", err)
	}

	existing, err := uc.catRepo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("cargar categorías existentes: %w", err)
	}
	byName := make(map[string]string, len(existing))
	for _, c := range existing {
		byName[c.Name] = c.ID
	}

	rec, err := dommenuimport.Reconcile(rows, byName)
	if err != nil {
		return nil, err
	}

	result := rec.Result
	err = uc.tx.RunImport(ctx, func(catRepo repository.CategoryRepository, subRepo repository.SubCategoryRepository) error {
		now := time.Now()
		for _, wc := range rec.Categories {
			if !wc.Matched {
				category := &entity.Category{
					ID:           wc.ID,
					CompanyID:    companyID,
					Name:         wc.Name,
					Description:  wc.Description,
					DisplayOrder: wc.DisplayOrder,
					Status:       "active",
					CreatedAt:    now,
					UpdatedAt:    now,
				}
				if err := catRepo.Create(category); err != nil {
					if !errors.Is(err, domain.ErrDuplicate) {
						return err
					}
					// Carrera con otra carga concurrente: el índice único de la DB
					// ganó; reusar el registro persistido y reatar las subcategorías.
					persisted, lookupErr := catRepo.GetByCompanyAndName(companyID, wc.Name)
					if lookupErr != nil {
						return lookupErr
					}
					if persisted == nil {
						return err
					}
					wc.Rebind(persisted.ID)
					wc.Matched = true
					result.CategoriesCreated--
					result.CategoriesMatched++
				}
			}
			for _, sub := range wc.SubCategories {
				persisted, err := subRepo.GetByCategoryAndName(wc.ID, sub.Name)
				if err != nil {
					return err
				}
				if persisted != nil {
					// Re-carga del mismo archivo: la versión persistida gana,
					// la fila cuenta como duplicada (no se actualiza nada).
					markDuplicated(&result, wc.Name, sub)
					continue
				}
				if err := subRepo.Create(&entity.SubCategory{
					ID:           sub.ID,
					CategoryID:   sub.CategoryID,
					Name:         sub.Name,
					Description:  sub.Description,
					DisplayOrder: sub.DisplayOrder,
					Status:       "active",
					CreatedAt:    now,
					UpdatedAt:    now,
				}); err != nil {
					if !errors.Is(err, domain.ErrDuplicate) {
						return err
					}
					markDuplicated(&result, wc.Name, sub)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolver importación: %w", err)
	}

	if uc.log != nil {
		uc.log.Info().
			Str("company_id", companyID).
			Int("categories_created", result.CategoriesCreated).
			Int("categories_matched", result.CategoriesMatched).
			Int("subcategories_created", result.SubCategoriesCreated).
			Int("subcategories_duplicated", result.SubCategoriesDuplicated).
			Int("row_errors", len(result.Errors)).
			Msg("carga masiva de carta completada")
	}

	return toImportResultResponse(&result), nil
}

// Template devuelve la plantilla de ejemplo en el formato pedido.
func (uc *ImportUseCase) Template(format Format) ([]byte, string, error) {
	return uc.template.Template(format)
}

func markDuplicated(result *dommenuimport.ImportResult, categoria string, sub *dommenuimport.WorkingSubCategory) {
	result.SubCategoriesCreated--
	result.SubCategoriesDuplicated++
	result.Duplicates = append(result.Duplicates, dommenuimport.RowNote{
		Row:          sub.Row,
		Categoria:    categoria,
		Subcategoria: sub.Name,
	})
}

func toImportResultResponse(r *dommenuimport.ImportResult) *dto.ImportResultResponse {
	resp := &dto.ImportResultResponse{
		CategoriesCreated:       r.CategoriesCreated,
		CategoriesMatched:       r.CategoriesMatched,
		SubCategoriesCreated:    r.SubCategoriesCreated,
		SubCategoriesDuplicated: r.SubCategoriesDuplicated,
		Errors:                  make([]dto.ImportRowErrorResponse, 0, len(r.Errors)),
	}
	for _, e := range r.Errors {
		resp.Errors = append(resp.Errors, dto.ImportRowErrorResponse{Row: e.Row, Reason: e.Reason})
	}
	for _, d := range r.Duplicates {
		resp.Duplicates = append(resp.Duplicates, dto.ImportDuplicateResponse{
			Row:          d.Row,
			Categoria:    d.Categoria,
			Subcategoria: d.Subcategoria,
		})
	}
	return resp
}
