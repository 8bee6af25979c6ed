package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Carta-api/internal/application/dto"
	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de la carta.
// La carga masiva no pasa por aquí: vive en application/menuimport.
type CategoryUseCase struct {
	repo    repository.CategoryRepository
	subRepo repository.SubCategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, subRepo repository.SubCategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, subRepo: subRepo}
}

// Create crea una categoría. El nombre es único por empresa (sin distinguir mayúsculas).
func (uc *CategoryUseCase) Create(companyID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         in.Name,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, nil), nil
}

// GetByID obtiene una categoría con sus subcategorías ordenadas.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	subs, err := uc.subRepo.ListByCategory(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category, subs), nil
}

// List lista las categorías de la empresa con sus subcategorías, ordenadas por display_order.
func (uc *CategoryUseCase) List(companyID string) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		subs, err := uc.subRepo.ListByCategory(c.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toCategoryResponse(c, subs))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Update actualiza una categoría. Devuelve nil, nil si no existe.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		// El rename no puede chocar con otra categoría de la empresa
		other, err := uc.repo.GetByCompanyAndName(category.CompanyID, *in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != category.ID {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.DisplayOrder != nil {
		category.DisplayOrder = *in.DisplayOrder
	}
	if in.Status != nil {
		category.Status = *in.Status
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, nil), nil
}

// Delete elimina una categoría (las subcategorías caen por cascada en la DB).
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category, subs []*entity.SubCategory) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CategoryResponse{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for _, s := range subs {
		resp.SubCategories = append(resp.SubCategories, *toSubCategoryResponse(s))
	}
	return resp
}
