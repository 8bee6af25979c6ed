package menucard

import (
	"context"

	"github.com/jhoicas/Carta-api/internal/domain/entity"
)

// CategoryForPDF agrupa una categoría con sus subcategorías ya ordenadas.
type CategoryForPDF struct {
	Category      *entity.Category
	SubCategories []SubCategoryForPDF
}

// SubCategoryForPDF agrupa una subcategoría con sus platos activos.
type SubCategoryForPDF struct {
	SubCategory *entity.SubCategory
	Items       []*entity.MenuItem
}

// MenuPDFGenerator genera la carta imprimible a partir del árbol ya cargado.
type MenuPDFGenerator interface {
	GenerateMenuPDF(ctx context.Context, company *entity.Company, categories []CategoryForPDF) ([]byte, error)
}
