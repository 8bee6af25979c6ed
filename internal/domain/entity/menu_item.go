package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un plato o producto de la carta dentro de una SubCategory.
type MenuItem struct {
	ID            string
	CompanyID     string
	SubCategoryID string
	Name          string
	Description   string
	Price         decimal.Decimal
	DisplayOrder  int
	Status        string // active, inactive, agotado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
