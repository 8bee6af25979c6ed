package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Carta-api/internal/application/dto"
	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// SubCategoryUseCase casos de uso CRUD para subcategorías.
type SubCategoryUseCase struct {
	repo    repository.SubCategoryRepository
	catRepo repository.CategoryRepository
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(repo repository.SubCategoryRepository, catRepo repository.CategoryRepository) *SubCategoryUseCase {
	return &SubCategoryUseCase{repo: repo, catRepo: catRepo}
}

// Create crea una subcategoría bajo una categoría de la empresa.
// Valida que la categoría exista y pertenezca a la empresa del caller.
func (uc *SubCategoryUseCase) Create(companyID, categoryID string, in dto.CreateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	category, err := uc.catRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByCategoryAndName(categoryID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	sub := &entity.SubCategory{
		ID:           uuid.New().String(),
		CategoryID:   categoryID,
		Name:         in.Name,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(sub); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// GetByID obtiene una subcategoría por ID.
func (uc *SubCategoryUseCase) GetByID(id string) (*dto.SubCategoryResponse, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	return toSubCategoryResponse(sub), nil
}

// ListByCategory lista las subcategorías de una categoría ordenadas por display_order.
func (uc *SubCategoryUseCase) ListByCategory(categoryID string) (*dto.SubCategoryListResponse, error) {
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubCategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubCategoryResponse(s))
	}
	return &dto.SubCategoryListResponse{Items: items}, nil
}

// Update actualiza una subcategoría. Devuelve nil, nil si no existe.
func (uc *SubCategoryUseCase) Update(id string, in dto.UpdateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	if in.Name != nil {
		other, err := uc.repo.GetByCategoryAndName(sub.CategoryID, *in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != sub.ID {
			return nil, domain.ErrDuplicate
		}
		sub.Name = *in.Name
	}
	if in.Description != nil {
		sub.Description = *in.Description
	}
	if in.DisplayOrder != nil {
		sub.DisplayOrder = *in.DisplayOrder
	}
	if in.Status != nil {
		sub.Status = *in.Status
	}
	sub.UpdatedAt = time.Now()
	if err := uc.repo.Update(sub); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// Delete elimina una subcategoría por ID.
func (uc *SubCategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSubCategoryResponse(s *entity.SubCategory) *dto.SubCategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubCategoryResponse{
		ID:           s.ID,
		CategoryID:   s.CategoryID,
		Name:         s.Name,
		Description:  s.Description,
		DisplayOrder: s.DisplayOrder,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
