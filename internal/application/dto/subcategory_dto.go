package dto

import "time"

// CreateSubCategoryRequest entrada para crear una subcategoría dentro de una categoría.
type CreateSubCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"omitempty,max=500"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,min=0"`
}

// UpdateSubCategoryRequest entrada para actualizar una subcategoría (campos opcionales).
type UpdateSubCategoryRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,min=0"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// SubCategoryResponse salida de una subcategoría.
type SubCategoryResponse struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SubCategoryListResponse lista de subcategorías de una categoría.
type SubCategoryListResponse struct {
	Items []SubCategoryResponse `json:"items"`
}
