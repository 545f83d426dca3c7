package models

import "github.com/shopspring/decimal"

// Product represents a product entity in the catalog.
type Product struct {
	ID       int             `gorm:"primaryKey;autoIncrement"`
	Name     string          `gorm:"size:100;not null"`
	Price    decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity int             `gorm:"not null;default:0"`
}

// TableName returns the table name for Product model.
func (Product) TableName() string {
	return "products"
}
