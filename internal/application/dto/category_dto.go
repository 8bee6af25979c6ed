package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría de la carta.
type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"omitempty,max=500"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,min=0"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (campos opcionales).
type UpdateCategoryRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,min=0"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID            string                `json:"id"`
	CompanyID     string                `json:"company_id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	DisplayOrder  int                   `json:"display_order"`
	Status        string                `json:"status"`
	SubCategories []SubCategoryResponse `json:"subcategories,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// CategoryListResponse lista de categorías ordenadas por display_order.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
