package handlers

import "github.com/rogerio-castellano/product-catalog/internal/models"

func toProductDto(p models.Product) ProductDto {
	return ProductDto{
		Id:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}

func toProductDtos(products []models.Product) []ProductDto {
	out := make([]ProductDto, len(products))
	for i, p := range products {
		out[i] = toProductDto(p)
	}
	return out
}

// newProduct leaves ID at zero for the store to assign.
func newProduct(dto CreateProductDto) models.Product {
	return models.Product{
		Name:     dto.Name,
		Price:    dto.Price,
		Quantity: dto.Quantity,
	}
}

func applyProductDto(dto CreateProductDto, p *models.Product) {
	p.Name = dto.Name
	p.Price = dto.Price
	p.Quantity = dto.Quantity
}
