package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/apperr"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

const validationFailedMessage = "One or more validation errors occurred."

// List godoc
// @Summary List products page by page
// @Tags products
// @Produce json
// @Param pageNumber query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} PagedResponse
// @Failure 400 {object} apperr.Response
// @Failure 500 {object} apperr.Response
// @Router /api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) error {
	pageNumber, pageSize, ok := pagination(r)
	if !ok {
		h.log.Warn().
			Str("pageNumber", r.URL.Query().Get("pageNumber")).
			Str("pageSize", r.URL.Query().Get("pageSize")).
			Msg("invalid pagination parameters")
		return writeError(w, http.StatusBadRequest, "Page number and page size must be greater than zero.")
	}

	query := h.repo.Query(r.Context())

	totalItems, err := query.Count()
	if err != nil {
		return err
	}
	totalPages := totalItems / pageSize
	if totalItems%pageSize != 0 {
		totalPages++
	}

	skip := math.MaxInt
	if pageNumber-1 <= math.MaxInt/pageSize {
		skip = (pageNumber - 1) * pageSize
	}
	products, err := query.Skip(skip).Take(pageSize).List()
	if err != nil {
		return err
	}

	resp := PagedResponse{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		Items:       toProductDtos(products),
	}

	h.log.Info().
		Int("pageNumber", pageNumber).
		Int("pageSize", pageSize).
		Int("totalItems", totalItems).
		Int("totalPages", totalPages).
		Int("itemsReturned", len(products)).
		Msg("paged products request")

	h.setCacheHint(w)
	return writeJSON(w, http.StatusOK, resp)
}

// Get godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductDto
// @Failure 400 {object} apperr.Response
// @Failure 404 {object} apperr.Response
// @Failure 500 {object} apperr.Response
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrProductNotFound) {
		h.log.Warn().Int("product_id", id).Msg("product not found")
		return writeError(w, http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	h.log.Info().Int("product_id", id).Msg("product retrieved")

	h.setCacheHint(w)
	return writeJSON(w, http.StatusOK, toProductDto(product))
}

// Create godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Param product body CreateProductDto true "Product to add"
// @Success 201 {object} ProductDto
// @Header 201 {string} Location "URL of the created product"
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} apperr.Response
// @Router /api/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req CreateProductDto
	if err := readJSON(w, r, &req); err != nil {
		return apperr.Wrap(err, "invalid request body")
	}

	if errs := validateProduct(req); len(errs) > 0 {
		h.log.Warn().Interface("validation_errors", errs).Msg("attempt to create product with invalid data")
		return h.rejectInvalid(w, errs)
	}

	product := newProduct(req)
	if err := h.repo.Add(r.Context(), &product); err != nil {
		return err
	}

	h.log.Info().Int("product_id", product.ID).Msg("product created")

	headers := http.Header{}
	headers.Set("Location", productLocation(product.ID))
	return writeJSON(w, http.StatusCreated, toProductDto(product), headers)
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Param id path int true "Product ID"
// @Param product body CreateProductDto true "Updated product"
// @Success 204 "Updated"
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} apperr.Response
// @Failure 500 {object} apperr.Response
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}

	var req CreateProductDto
	if err := readJSON(w, r, &req); err != nil {
		return apperr.Wrap(err, "invalid request body")
	}

	if errs := validateProduct(req); len(errs) > 0 {
		h.log.Warn().Int("product_id", id).Interface("validation_errors", errs).Msg("attempt to update product with invalid data")
		return h.rejectInvalid(w, errs)
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrProductNotFound) {
		h.log.Warn().Int("product_id", id).Msg("attempt to update non-existent product")
		return writeError(w, http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	applyProductDto(req, &product)
	if err := h.repo.Update(r.Context(), &product); err != nil {
		return err
	}

	h.log.Info().Int("product_id", id).Msg("product updated")

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {object} apperr.Response
// @Failure 404 {object} apperr.Response
// @Failure 500 {object} apperr.Response
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}

	exists, err := h.repo.Exists(r.Context(), id)
	if err != nil {
		return err
	}
	if !exists {
		h.log.Warn().Int("product_id", id).Msg("attempt to delete non-existent product")
		return writeError(w, http.StatusNotFound, "product not found")
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			h.log.Warn().Int("product_id", id).Msg("product vanished before delete")
			return writeError(w, http.StatusNotFound, "product not found")
		}
		return err
	}

	h.log.Info().Int("product_id", id).Msg("product deleted")

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *ProductHandler) rejectInvalid(w http.ResponseWriter, errs ValidationErrors) error {
	return writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    validationFailedMessage,
		Errors:     errs,
	})
}
