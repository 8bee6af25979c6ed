package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Carta-api/internal/application/dto"
	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// MenuItemUseCase casos de uso CRUD para platos de la carta.
type MenuItemUseCase struct {
	repo    repository.MenuItemRepository
	subRepo repository.SubCategoryRepository
	catRepo repository.CategoryRepository
}

// NewMenuItemUseCase construye el caso de uso.
func NewMenuItemUseCase(repo repository.MenuItemRepository, subRepo repository.SubCategoryRepository, catRepo repository.CategoryRepository) *MenuItemUseCase {
	return &MenuItemUseCase{repo: repo, subRepo: subRepo, catRepo: catRepo}
}

// Create crea un plato bajo una subcategoría de la empresa del caller.
func (uc *MenuItemUseCase) Create(companyID string, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	sub, err := uc.subRepo.GetByID(in.SubCategoryID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.catRepo.GetByID(sub.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		SubCategoryID: in.SubCategoryID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		DisplayOrder:  in.DisplayOrder,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// GetByID obtiene un plato por ID.
func (uc *MenuItemUseCase) GetByID(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toMenuItemResponse(item), nil
}

// List lista platos de la empresa con paginación.
func (uc *MenuItemUseCase) List(companyID string, limit, offset int) (*dto.MenuItemListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toMenuItemResponse(it))
	}
	return &dto.MenuItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un plato. Devuelve nil, nil si no existe.
func (uc *MenuItemUseCase) Update(id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.DisplayOrder != nil {
		item.DisplayOrder = *in.DisplayOrder
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Delete elimina un plato por ID.
func (uc *MenuItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMenuItemResponse(it *entity.MenuItem) *dto.MenuItemResponse {
	if it == nil {
		return nil
	}
	return &dto.MenuItemResponse{
		ID:            it.ID,
		CompanyID:     it.CompanyID,
		SubCategoryID: it.SubCategoryID,
		Name:          it.Name,
		Description:   it.Description,
		Price:         it.Price,
		DisplayOrder:  it.DisplayOrder,
		Status:        it.Status,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
