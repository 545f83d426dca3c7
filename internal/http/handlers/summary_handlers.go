package handlers

import "net/http"

// Summary godoc
// @Summary Catalog-wide product figures
// @Tags products
// @Produce json
// @Success 200 {object} repo.ProductSummary
// @Failure 500 {object} apperr.Response
// @Router /api/products/summary [get]
func (h *ProductHandler) Summary(w http.ResponseWriter, r *http.Request) error {
	s, err := h.repo.Summary(r.Context())
	if err != nil {
		return err
	}

	h.setCacheHint(w)
	return writeJSON(w, http.StatusOK, s)
}
