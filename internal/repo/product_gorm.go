package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

type gormProductQuery struct {
	db     *gorm.DB
	offset int
	limit  int
}

func (r *GormProductRepository) Query(ctx context.Context) ProductQuery {
	return gormProductQuery{db: r.db.WithContext(ctx), limit: -1}
}

func (q gormProductQuery) Count() (int, error) {
	var total int64
	if err := q.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return int(total), nil
}

func (q gormProductQuery) Skip(n int) ProductQuery {
	q.offset = max(n, 0)
	return q
}

func (q gormProductQuery) Take(n int) ProductQuery {
	q.limit = max(n, 0)
	return q
}

func (q gormProductQuery) List() ([]models.Product, error) {
	tx := q.db.Model(&models.Product{}).Order("id")
	if q.offset > 0 {
		tx = tx.Offset(q.offset)
	}
	if q.limit >= 0 {
		tx = tx.Limit(q.limit)
	}

	products := []models.Product{}
	if err := tx.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to find product %d: %w", id, err)
	}
	return p, nil
}

func (r *GormProductRepository) Exists(ctx context.Context, id int) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Limit(1).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check product %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *GormProductRepository) Add(ctx context.Context, p *models.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites name, price and quantity of the row with p.ID.
// A missing row is not an error; callers check existence first.
func (r *GormProductRepository) Update(ctx context.Context, p *models.Product) error {
	err := r.db.WithContext(ctx).
		Model(&models.Product{ID: p.ID}).
		Select("Name", "Price", "Quantity").
		Updates(p).Error
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", p.ID, err)
	}
	return nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if err := res.Error; err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type summaryRow struct {
	TotalProducts  int
	TotalQuantity  int
	InventoryValue decimal.NullDecimal
	OutOfStock     int
}

func (r *GormProductRepository) Summary(ctx context.Context) (ProductSummary, error) {
	var row summaryRow
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select(`COUNT(*) AS total_products,
			COALESCE(SUM(quantity), 0) AS total_quantity,
			SUM(price * quantity) AS inventory_value,
			COALESCE(SUM(CASE WHEN quantity = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock`).
		Scan(&row).Error
	if err != nil {
		return ProductSummary{}, fmt.Errorf("failed to summarize products: %w", err)
	}

	value := decimal.Zero
	if row.InventoryValue.Valid {
		value = row.InventoryValue.Decimal.Round(2)
	}
	return ProductSummary{
		TotalProducts:  row.TotalProducts,
		TotalQuantity:  row.TotalQuantity,
		InventoryValue: value,
		OutOfStock:     row.OutOfStock,
	}, nil
}
