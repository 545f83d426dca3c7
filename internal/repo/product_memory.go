package repo

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

type memoryProductQuery struct {
	r      *InMemoryProductRepository
	offset int
	limit  int
}

func (r *InMemoryProductRepository) Query(_ context.Context) ProductQuery {
	return memoryProductQuery{r: r, limit: -1}
}

func (q memoryProductQuery) Count() (int, error) {
	q.r.mu.RLock()
	defer q.r.mu.RUnlock()
	return len(q.r.products), nil
}

func (q memoryProductQuery) Skip(n int) ProductQuery {
	q.offset = max(n, 0)
	return q
}

func (q memoryProductQuery) Take(n int) ProductQuery {
	q.limit = max(n, 0)
	return q
}

func (q memoryProductQuery) List() ([]models.Product, error) {
	q.r.mu.RLock()
	defer q.r.mu.RUnlock()

	start := clamp(q.offset, 0, len(q.r.products))
	end := len(q.r.products)
	if q.limit >= 0 {
		end = clamp(start+q.limit, start, len(q.r.products))
	}

	out := make([]models.Product, end-start)
	copy(out, q.r.products[start:end])
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Exists(_ context.Context, id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0, nil
}

// Add stores a new product and assigns its ID.
func (r *InMemoryProductRepository) Add(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *product)
	return nil
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(product.ID); i >= 0 {
		r.products[i] = *product
	}
	return nil
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *InMemoryProductRepository) Ping(_ context.Context) error {
	return nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}

// indexOf expects r.mu to be held.
func (r *InMemoryProductRepository) indexOf(id int) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r *InMemoryProductRepository) Summary(_ context.Context) (ProductSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := ProductSummary{TotalProducts: len(r.products), InventoryValue: decimal.Zero}
	for _, p := range r.products {
		s.TotalQuantity += p.Quantity
		s.InventoryValue = s.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		if p.Quantity == 0 {
			s.OutOfStock++
		}
	}
	s.InventoryValue = s.InventoryValue.Round(2)
	return s, nil
}
