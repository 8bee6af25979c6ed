package repository

import "github.com/jhoicas/Carta-api/internal/domain/entity"

// SubCategoryRepository define el puerto de persistencia para SubCategory (DIP).
type SubCategoryRepository interface {
	Create(sub *entity.SubCategory) error
	GetByID(id string) (*entity.SubCategory, error)
	// GetByCategoryAndName busca por nombre sin distinguir mayúsculas. Devuelve nil, nil si no existe.
	GetByCategoryAndName(categoryID, name string) (*entity.SubCategory, error)
	ListByCategory(categoryID string) ([]*entity.SubCategory, error)
	Update(sub *entity.SubCategory) error
	Delete(id string) error
}
