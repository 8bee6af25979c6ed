package entity

import "time"

// Category representa una categoría de la carta (ej. "Entradas", "Bebidas").
// Única por (company_id, nombre) sin distinguir mayúsculas; la importación
// nunca elimina categorías, solo las crea o las reutiliza.
type Category struct {
	ID           string
	CompanyID    string
	Name         string
	Description  string
	DisplayOrder int    // orden en la carta; no se renumera en importaciones
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
