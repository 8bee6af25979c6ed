package entity

import "time"

// SubCategory representa una subcategoría de la carta, siempre con una
// Category dueña. Única por (category_id, nombre) sin distinguir mayúsculas.
// Nunca transporta el nombre de la categoría: esa resolución ocurre en la
// importación y aquí solo queda el identificador persistido.
type SubCategory struct {
	ID           string
	CategoryID   string
	Name         string
	Description  string
	DisplayOrder int
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
