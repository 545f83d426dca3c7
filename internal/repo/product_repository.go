package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ProductQuery is a lazy, composable view over the stored products.
// Nothing touches the store until Count or List is called.
type ProductQuery interface {
	// Count reports how many products the query matches, ignoring Skip and Take.
	Count() (int, error)
	Skip(n int) ProductQuery
	Take(n int) ProductQuery
	// List materializes the query in ascending ID order.
	List() ([]models.Product, error)
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Query(ctx context.Context) ProductQuery
	GetByID(ctx context.Context, id int) (models.Product, error)
	Exists(ctx context.Context, id int) (bool, error)
	Add(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) error
	Ping(ctx context.Context) error
	SummaryRepository
}
