package repository

import "github.com/jhoicas/Carta-api/internal/domain/entity"

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	ListBySubCategory(subCategoryID string) ([]*entity.MenuItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	Delete(id string) error
}
