package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/http/router"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

func newTestRouter(t *testing.T) (http.Handler, *repo.InMemoryProductRepository) {
	t.Helper()
	productRepo := repo.NewInMemoryProductRepository()
	return routerFor(productRepo), productRepo
}

func routerFor(r repo.ProductRepository) http.Handler {
	return router.NewRouter(router.Options{
		Products: handlers.NewProductHandler(r, zerolog.Nop(), 60*time.Second),
		Logger:   zerolog.Nop(),
	})
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(t *testing.T, r http.Handler, name string, price string, quantity int) handlers.ProductDto {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"price":%s,"quantity":%d}`, name, price, quantity)
	w := do(r, http.MethodPost, "/api/products", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created handlers.ProductDto
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	return created
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), w.Body.String())
	return v
}

var errStoreDown = errors.New("dial tcp 10.0.0.5:5432: connection refused")

// brokenRepo fails every store call.
type brokenRepo struct{}

type brokenQuery struct{}

func (brokenQuery) Count() (int, error) { return 0, errStoreDown }
func (q brokenQuery) Skip(int) repo.ProductQuery { return q }
func (q brokenQuery) Take(int) repo.ProductQuery { return q }
func (brokenQuery) List() ([]models.Product, error) { return nil, errStoreDown }
func (brokenRepo) Query(context.Context) repo.ProductQuery { return brokenQuery{} }
func (brokenRepo) GetByID(context.Context, int) (models.Product, error) {
	return models.Product{}, errStoreDown
}
func (brokenRepo) Exists(context.Context, int) (bool, error) { return false, errStoreDown }
func (brokenRepo) Add(context.Context, *models.Product) error { return errStoreDown }
func (brokenRepo) Update(context.Context, *models.Product) error { return errStoreDown }
func (brokenRepo) Delete(context.Context, int) error { return errStoreDown }
func (brokenRepo) Ping(context.Context) error { return errStoreDown }
func (brokenRepo) Summary(context.Context) (repo.ProductSummary, error) {
	return repo.ProductSummary{}, errStoreDown
}
