package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// BasePath is where the product routes are mounted.
const BasePath = "/api/products"

// ProductHandler serves the products API on top of a ProductRepository.
type ProductHandler struct {
	repo        repo.ProductRepository
	log         zerolog.Logger
	cacheMaxAge time.Duration
}

// NewProductHandler wires the handler dependencies. cacheMaxAge is the
// freshness window advertised on list and get responses; zero disables the hint.
func NewProductHandler(r repo.ProductRepository, log zerolog.Logger, cacheMaxAge time.Duration) *ProductHandler {
	return &ProductHandler{
		repo:        r,
		log:         log.With().Str("component", "products").Logger(),
		cacheMaxAge: cacheMaxAge,
	}
}

func (h *ProductHandler) setCacheHint(w http.ResponseWriter) {
	if h.cacheMaxAge <= 0 {
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheMaxAge.Seconds())))
}

func productLocation(id int) string {
	return fmt.Sprintf("%s/%d", BasePath, id)
}
