package menucard

import (
	"context"
	"fmt"

	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// PDFUseCase arma el árbol de la carta (categorías → subcategorías → platos)
// y delega el render al generador.
type PDFUseCase struct {
	companyRepo repository.CompanyRepository
	catRepo     repository.CategoryRepository
	subRepo     repository.SubCategoryRepository
	itemRepo    repository.MenuItemRepository
	generator   MenuPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	companyRepo repository.CompanyRepository,
	catRepo repository.CategoryRepository,
	subRepo repository.SubCategoryRepository,
	itemRepo repository.MenuItemRepository,
	generator MenuPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		companyRepo: companyRepo,
		catRepo:     catRepo,
		subRepo:     subRepo,
		itemRepo:    itemRepo,
		generator:   generator,
	}
}

// GenerateMenuCard genera el PDF de la carta completa de la empresa.
// Solo incluye categorías y subcategorías activas, en su display_order.
func (uc *PDFUseCase) GenerateMenuCard(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	categories, err := uc.catRepo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("cargar categorías: %w", err)
	}

	tree := make([]CategoryForPDF, 0, len(categories))
	for _, cat := range categories {
		if cat.Status != "active" {
			continue
		}
		subs, err := uc.subRepo.ListByCategory(cat.ID)
		if err != nil {
			return nil, fmt.Errorf("cargar subcategorías de %s: %w", cat.Name, err)
		}
		node := CategoryForPDF{Category: cat}
		for _, sub := range subs {
			if sub.Status != "active" {
				continue
			}
			items, err := uc.itemRepo.ListBySubCategory(sub.ID)
			if err != nil {
				return nil, fmt.Errorf("cargar platos de %s: %w", sub.Name, err)
			}
			node.SubCategories = append(node.SubCategories, SubCategoryForPDF{
				SubCategory: sub,
				Items:       items,
			})
		}
		tree = append(tree, node)
	}

	return uc.generator.GenerateMenuPDF(ctx, company, tree)
}
