package repo

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductSummary aggregates the whole catalog.
type ProductSummary struct {
	TotalProducts  int             `json:"totalProducts"`
	TotalQuantity  int             `json:"totalQuantity"`
	InventoryValue decimal.Decimal `json:"inventoryValue" swaggertype:"number"`
	OutOfStock     int             `json:"outOfStock"`
}

// SummaryRepository computes catalog-wide figures.
type SummaryRepository interface {
	Summary(ctx context.Context) (ProductSummary, error)
}
