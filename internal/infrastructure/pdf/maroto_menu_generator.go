// Package pdf implementa la carta imprimible del restaurante con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del restaurante │ Dirección / Tel           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA (ej. Entradas) + descripción                     │
//	│    Subcategoría (ej. Sopas)                                 │
//	│      Plato .......................................  $precio │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Carta-api/internal/application/menucard"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 40, Blue: 31}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoMenuGenerator implementa menucard.MenuPDFGenerator.
var _ menucard.MenuPDFGenerator = (*MarotoMenuGenerator)(nil)

// MarotoMenuGenerator implementa menucard.MenuPDFGenerator usando Maroto v2.
type MarotoMenuGenerator struct{}

// NewMarotoMenuGenerator construye el generador.
func NewMarotoMenuGenerator() *MarotoMenuGenerator { return &MarotoMenuGenerator{} }

// GenerateMenuPDF genera el PDF de la carta y devuelve sus bytes.
func (g *MarotoMenuGenerator) GenerateMenuPDF(_ context.Context, company *entity.Company, categories []menucard.CategoryForPDF) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Carta "+company.Name, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))

	for _, cat := range categories {
		m.AddRows(categoryRows(cat)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del restaurante (izq) y datos de contacto (der).
func headerRow(company *entity.Company) core.Row {
	contacto := company.Address
	if company.Phone != "" {
		if contacto != "" {
			contacto += " · "
		}
		contacto += company.Phone
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(contacto, props.Text{
				Size: 8, Top: 6, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// categoryRows: título de la categoría, subcategorías y platos con precio.
func categoryRows(cat menucard.CategoryForPDF) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New(cat.Category.Name, props.Text{
					Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 3,
				}),
			),
		),
	}
	if cat.Category.Description != "" {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(
				text.New(cat.Category.Description, props.Text{
					Size: 8, Style: fontstyle.Italic, Color: colorGray,
				}),
			),
		))
	}
	for _, sub := range cat.SubCategories {
		rows = append(rows, row.New(7).Add(
			col.New(12).Add(
				text.New(sub.SubCategory.Name, props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 1, Left: 3,
				}),
			),
		))
		for _, item := range sub.Items {
			if item.Status != "active" {
				continue
			}
			rows = append(rows, itemRow(item))
		}
	}
	return rows
}

// itemRow: nombre y descripción del plato a la izquierda, precio a la derecha.
func itemRow(item *entity.MenuItem) core.Row {
	r := row.New(6).Add(
		col.New(9).Add(
			text.New(item.Name, props.Text{Size: 9, Left: 6}),
		),
		col.New(3).Add(
			text.New("$ "+item.Price.StringFixed(2), props.Text{
				Size: 9, Align: align.Right,
			}),
		),
	)
	return r
}

// footerRow: fecha de generación.
func footerRow() core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(
				fmt.Sprintf("Generado el %s", time.Now().Format("02/01/2006 15:04")),
				props.Text{Size: 7, Align: align.Center, Color: colorGray},
			),
		),
	)
}
