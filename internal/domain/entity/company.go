package entity

import "time"

// Company representa un restaurante dueño de una carta.
type Company struct {
	ID        string
	Name      string
	NIT       string
	Address   string
	Phone     string
	Email     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
