// Package menuimport implementa el motor de reconciliación de la carga masiva
// de carta: agrupa filas en categorías/subcategorías por clave natural
// (nombre, sin distinguir mayúsculas), deduplica dentro de la corrida y
// resuelve identificadores persistidos antes de tocar el almacenamiento.
// El paquete es puro: no hace I/O y no conoce la capa de persistencia.
package menuimport

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Carta-api/internal/domain"
)

// WorkingCategory es una categoría del working set de una corrida. Conserva la
// grafía y los atributos de la primera aparición; filas posteriores solo
// aportan subcategorías, nunca sobreescriben.
type WorkingCategory struct {
	ID            string // persistido si Matched; UUID nuevo si no
	Name          string
	Description   string
	DisplayOrder  int
	Matched       bool // true si venía del mapa de categorías existentes
	SubCategories []*WorkingSubCategory
}

// WorkingSubCategory es una subcategoría pendiente de persistir, ya enlazada
// al identificador de su categoría.
type WorkingSubCategory struct {
	ID           string
	CategoryID   string
	Row          int // fila de origen, para trazabilidad
	Name         string
	Description  string
	DisplayOrder int
}

// Reconciliation es el resultado completo de una corrida: el working set en
// orden de primera aparición más el resumen de conteos y errores.
type Reconciliation struct {
	Categories []*WorkingCategory
	Result     ImportResult
}

// Rebind reasigna el identificador persistido de la categoría y reescribe la
// referencia padre de todas sus subcategorías. Lo usa la fase de resolución
// cuando el almacenamiento ya tenía la categoría (ej. carrera entre cargas).
func (wc *WorkingCategory) Rebind(id string) {
	wc.ID = id
	for _, sub := range wc.SubCategories {
		sub.CategoryID = id
	}
}

// NormalizeName devuelve la clave natural de un nombre: recortado y con
// case folding Unicode, para que "Bebidas" y "BEBIDAS" sean la misma categoría.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Reconcile procesa las filas en orden y construye el working set.
//
// Reglas:
//   - Fila sin categoría o sin subcategoría: error local (se registra y se
//     continúa), nunca aborta el lote.
//   - Primera aparición de un nombre de categoría: se crea un registro de
//     trabajo (o se reutiliza el persistido si existing lo trae); repeticiones
//     reutilizan el registro sin sobreescribir descripción ni orden.
//   - Par (categoría, subcategoría) repetido dentro de la corrida: se descarta
//     y se anota como duplicado, no como error.
//   - Secuencia vacía: error fatal, sin resultado parcial.
//
// existing mapea nombre de categoría → identificador persistido; las claves se
// normalizan aquí, el caller puede pasarlas con cualquier grafía.
func Reconcile(rows []ImportRow, existing map[string]string) (*Reconciliation, error) {
	if len(rows) == 0 {
		return nil, domain.ErrImportVacio
	}

	persisted := make(map[string]string, len(existing))
	for name, id := range existing {
		persisted[NormalizeName(name)] = id
	}

	rec := &Reconciliation{}
	working := make(map[string]*WorkingCategory)
	seenPairs := make(map[string]struct{})

	for i, row := range rows {
		num := row.Row
		if num == 0 {
			num = i + 1
		}
		catName := strings.TrimSpace(row.Categoria)
		subName := strings.TrimSpace(row.Subcategoria)
		if catName == "" {
			rec.Result.Errors = append(rec.Result.Errors, RowError{Row: num, Reason: "falta campo requerido: categoria"})
			continue
		}
		if subName == "" {
			rec.Result.Errors = append(rec.Result.Errors, RowError{Row: num, Reason: "falta campo requerido: subcategoria"})
			continue
		}

		catKey := NormalizeName(catName)
		wc, ok := working[catKey]
		if !ok {
			wc = &WorkingCategory{
				Name:         catName,
				Description:  strings.TrimSpace(row.DescripcionCategoria),
				DisplayOrder: row.OrdenCategoria,
			}
			if id, found := persisted[catKey]; found {
				wc.ID = id
				wc.Matched = true
				rec.Result.CategoriesMatched++
			} else {
				wc.ID = uuid.New().String()
				rec.Result.CategoriesCreated++
			}
			working[catKey] = wc
			rec.Categories = append(rec.Categories, wc)
		}

		pairKey := catKey + "\x00" + NormalizeName(subName)
		if _, dup := seenPairs[pairKey]; dup {
			rec.Result.SubCategoriesDuplicated++
			rec.Result.Duplicates = append(rec.Result.Duplicates, RowNote{
				Row:          num,
				Categoria:    wc.Name,
				Subcategoria: subName,
			})
			continue
		}
		seenPairs[pairKey] = struct{}{}

		wc.SubCategories = append(wc.SubCategories, &WorkingSubCategory{
			ID:           uuid.New().String(),
			CategoryID:   wc.ID,
			Row:          num,
			Name:         subName,
			Description:  strings.TrimSpace(row.DescripcionSubcategoria),
			DisplayOrder: row.OrdenSubcategoria,
		})
		rec.Result.SubCategoriesCreated++
	}

	return rec, nil
}
