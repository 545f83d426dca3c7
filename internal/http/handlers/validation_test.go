package handlers

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

func TestValidateProduct(t *testing.T) {
	price := decimal.RequireFromString

	tests := []struct {
		name string
		dto  CreateProductDto
		want ValidationErrors
	}{
		{
			name: "valid",
			dto:  CreateProductDto{Name: "Widget", Price: price("9.99"), Quantity: 5},
			want: ValidationErrors{},
		},
		{
			name: "name too short",
			dto:  CreateProductDto{Name: "AB", Price: price("9.99"), Quantity: 5},
			want: ValidationErrors{"Name": "Name must be between 3 and 100 characters"},
		},
		{
			name: "name counts characters not bytes",
			dto:  CreateProductDto{Name: "çãé", Price: price("9.99")},
			want: ValidationErrors{},
		},
		{
			name: "name too long",
			dto:  CreateProductDto{Name: strings.Repeat("n", 101), Price: price("9.99")},
			want: ValidationErrors{"Name": "Name must be between 3 and 100 characters"},
		},
		{
			name: "missing price",
			dto:  CreateProductDto{Name: "Widget"},
			want: ValidationErrors{"Price": "Price is required"},
		},
		{
			name: "price just above bound",
			dto:  CreateProductDto{Name: "Widget", Price: price("0.011")},
			want: ValidationErrors{},
		},
		{
			name: "price above bound beyond float precision",
			dto:  CreateProductDto{Name: "Widget", Price: price("0.0100000000000000001")},
			want: ValidationErrors{},
		},
		{
			name: "price below bound beyond float precision",
			dto:  CreateProductDto{Name: "Widget", Price: price("0.0099999999999999999")},
			want: ValidationErrors{"Price": "Price must be greater than 0.01"},
		},
		{
			name: "price with no upper bound",
			dto:  CreateProductDto{Name: "Widget", Price: price("123456789012345678901234.5")},
			want: ValidationErrors{},
		},
		{
			name: "price at bound",
			dto:  CreateProductDto{Name: "Widget", Price: price("0.01")},
			want: ValidationErrors{"Price": "Price must be greater than 0.01"},
		},
		{
			name: "all broken",
			dto:  CreateProductDto{Name: " ", Price: price("-1"), Quantity: -1},
			want: ValidationErrors{
				"Name":     "Name is required",
				"Price":    "Price must be greater than 0.01",
				"Quantity": "Quantity must be non-negative",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateProduct(tt.dto))
		})
	}
}

func TestProductMapping(t *testing.T) {
	dto := CreateProductDto{Name: "Lamp", Price: decimal.RequireFromString("19.90"), Quantity: 3}

	p := newProduct(dto)
	assert.Zero(t, p.ID)
	assert.Equal(t, "Lamp", p.Name)
	assert.True(t, p.Price.Equal(dto.Price))
	assert.Equal(t, 3, p.Quantity)

	p.ID = 12
	read := toProductDto(p)
	assert.Equal(t, ProductDto{Id: 12, Name: "Lamp", Price: p.Price, Quantity: 3}, read)

	existing := models.Product{ID: 8, Name: "Old", Price: decimal.NewFromInt(1), Quantity: 1}
	applyProductDto(dto, &existing)
	assert.Equal(t, 8, existing.ID)
	assert.Equal(t, "Lamp", existing.Name)
	assert.True(t, existing.Price.Equal(dto.Price))
	assert.Equal(t, 3, existing.Quantity)

	assert.Empty(t, toProductDtos(nil))
	assert.NotNil(t, toProductDtos(nil))
}
