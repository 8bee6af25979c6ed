package repository

import "github.com/jhoicas/Carta-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByCompanyAndName busca por nombre sin distinguir mayúsculas. Devuelve nil, nil si no existe.
	GetByCompanyAndName(companyID, name string) (*entity.Category, error)
	ListByCompany(companyID string) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
