package repo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func repositories(t *testing.T) map[string]repo.ProductRepository {
	return map[string]repo.ProductRepository{
		"gorm":   repo.NewGormProductRepository(setupTestDB(t)),
		"memory": repo.NewInMemoryProductRepository(),
	}
}

func seed(t *testing.T, r repo.ProductRepository, n int) []models.Product {
	t.Helper()
	ctx := context.Background()

	out := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		p := models.Product{
			Name:     "Product " + string(rune('A'+i)),
			Price:    decimal.NewFromFloat(1.50).Add(decimal.NewFromInt(int64(i))),
			Quantity: i,
		}
		require.NoError(t, r.Add(ctx, &p))
		require.NotZero(t, p.ID)
		out = append(out, p)
	}
	return out
}

func TestProductRepository_AddAndGetByID(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := models.Product{Name: "Widget", Price: decimal.RequireFromString("9.99"), Quantity: 5}
			require.NoError(t, r.Add(ctx, &p))

			got, err := r.GetByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, p.ID, got.ID)
			assert.Equal(t, "Widget", got.Name)
			assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")), "price %s", got.Price)
			assert.Equal(t, 5, got.Quantity)
		})
	}
}

func TestProductRepository_PriceKeepsSubCentScale(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, price := range []string{"0.011", "9.999"} {
				p := models.Product{Name: "Precise", Price: decimal.RequireFromString(price), Quantity: 1}
				require.NoError(t, r.Add(ctx, &p))

				got, err := r.GetByID(ctx, p.ID)
				require.NoError(t, err)
				assert.True(t, got.Price.Equal(p.Price), "stored %s, read %s", price, got.Price)
			}
		})
	}
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := r.GetByID(context.Background(), 404)
			assert.ErrorIs(t, err, repo.ErrProductNotFound)
		})
	}
}

func TestProductRepository_Exists(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			products := seed(t, r, 1)

			ok, err := r.Exists(ctx, products[0].ID)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = r.Exists(ctx, products[0].ID+100)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestProductRepository_Update(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			products := seed(t, r, 2)

			changed := products[0]
			changed.Name = "Renamed"
			changed.Price = decimal.RequireFromString("42.50")
			changed.Quantity = 99
			require.NoError(t, r.Update(ctx, &changed))

			got, err := r.GetByID(ctx, changed.ID)
			require.NoError(t, err)
			assert.Equal(t, "Renamed", got.Name)
			assert.True(t, got.Price.Equal(decimal.RequireFromString("42.50")))
			assert.Equal(t, 99, got.Quantity)

			untouched, err := r.GetByID(ctx, products[1].ID)
			require.NoError(t, err)
			assert.Equal(t, products[1].Name, untouched.Name)
		})
	}
}

func TestProductRepository_UpdateMissingIsNoOp(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			ghost := models.Product{ID: 77, Name: "Ghost", Price: decimal.NewFromInt(1), Quantity: 1}
			require.NoError(t, r.Update(ctx, &ghost))

			ok, err := r.Exists(ctx, 77)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestProductRepository_Delete(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			products := seed(t, r, 1)

			require.NoError(t, r.Delete(ctx, products[0].ID))
			_, err := r.GetByID(ctx, products[0].ID)
			assert.ErrorIs(t, err, repo.ErrProductNotFound)

			assert.ErrorIs(t, r.Delete(ctx, products[0].ID), repo.ErrProductNotFound)
		})
	}
}

func TestProductRepository_QueryPaging(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			products := seed(t, r, 5)

			q := r.Query(ctx)
			total, err := q.Count()
			require.NoError(t, err)
			assert.Equal(t, 5, total)

			page, err := q.Skip(2).Take(2).List()
			require.NoError(t, err)
			require.Len(t, page, 2)
			assert.Equal(t, products[2].ID, page[0].ID)
			assert.Equal(t, products[3].ID, page[1].ID)

			tail, err := q.Skip(4).Take(10).List()
			require.NoError(t, err)
			require.Len(t, tail, 1)
			assert.Equal(t, products[4].ID, tail[0].ID)

			beyond, err := q.Skip(10).Take(3).List()
			require.NoError(t, err)
			assert.Empty(t, beyond)

			all, err := q.List()
			require.NoError(t, err)
			assert.Len(t, all, 5)

			// paging does not leak into the count
			paged, err := q.Skip(3).Take(1).Count()
			require.NoError(t, err)
			assert.Equal(t, 5, paged)
		})
	}
}

func TestProductRepository_Ping(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, r.Ping(context.Background()))
		})
	}
}

func TestProductRepository_Summary(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			empty, err := r.Summary(ctx)
			require.NoError(t, err)
			assert.Zero(t, empty.TotalProducts)
			assert.True(t, empty.InventoryValue.IsZero())

			// prices 1.50, 2.50, 3.50 with quantities 0, 1, 2
			seed(t, r, 3)

			s, err := r.Summary(ctx)
			require.NoError(t, err)
			assert.Equal(t, 3, s.TotalProducts)
			assert.Equal(t, 3, s.TotalQuantity)
			assert.Equal(t, 1, s.OutOfStock)
			assert.True(t, s.InventoryValue.Equal(decimal.RequireFromString("9.50")), s.InventoryValue.String())
		})
	}
}
