package handlers

import "github.com/shopspring/decimal"

func init() {
	// prices travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductDto is the read shape of a product.
type ProductDto struct {
	Id       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity int             `json:"quantity"`
}

// CreateProductDto is the write shape accepted by create and update.
type CreateProductDto struct {
	Name     string          `json:"name" validate:"notblank,min=3,max=100"`
	Price    decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity int             `json:"quantity" validate:"min=0"`
}

type PagedResponse struct {
	TotalItems  int          `json:"totalItems"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
	PageSize    int          `json:"pageSize"`
	Items       []ProductDto `json:"items"`
}

type ValidationErrorResponse struct {
	StatusCode int              `json:"StatusCode"`
	Message    string           `json:"Message"`
	Errors     ValidationErrors `json:"Errors"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
