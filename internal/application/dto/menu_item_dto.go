package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest entrada para crear un plato de la carta.
type CreateMenuItemRequest struct {
	SubCategoryID string          `json:"subcategory_id" validate:"required,uuid"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"omitempty,max=500"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	DisplayOrder  int             `json:"display_order" validate:"omitempty,min=0"`
}

// UpdateMenuItemRequest entrada para actualizar un plato (campos opcionales).
type UpdateMenuItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description" validate:"omitempty,max=500"`
	Price        *decimal.Decimal `json:"price"`
	DisplayOrder *int             `json:"display_order" validate:"omitempty,min=0"`
	Status       *string          `json:"status" validate:"omitempty,oneof=active inactive agotado"`
}

// MenuItemResponse salida de un plato.
type MenuItemResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	SubCategoryID string          `json:"subcategory_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	DisplayOrder  int             `json:"display_order"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// MenuItemListResponse lista paginada de platos.
type MenuItemListResponse struct {
	Items []MenuItemResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
