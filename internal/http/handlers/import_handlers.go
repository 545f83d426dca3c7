package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/product-catalog/internal/apperr"
)

const maxImportBytes = 10 << 20

var importColumns = []string{"name", "price", "quantity"}

// ImportRowError reports why one CSV row was rejected. Row counts the
// header as row 1.
type ImportRowError struct {
	Row    int              `json:"row"`
	Errors ValidationErrors `json:"errors"`
}

type ImportResult struct {
	ImportedCount int              `json:"importedCount"`
	Errors        []ImportRowError `json:"errors"`
}

type csvRow struct {
	line int
	dto  CreateProductDto
	errs ValidationErrors
}

// parseCSV reads a header naming at least name, price and quantity in any
// order, then one product per line.
func parseCSV(src io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, apperr.Wrap(err, "invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			return nil, apperr.New("CSV header must include name, price and quantity")
		}
	}

	var rows []csvRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperr.Wrap(err, fmt.Sprintf("malformed CSV at row %d", line))
		}

		row := csvRow{line: line, errs: ValidationErrors{}}
		row.dto.Name = record[index["name"]]

		if raw := strings.TrimSpace(record[index["price"]]); raw != "" {
			price, err := decimal.NewFromString(raw)
			if err != nil {
				row.errs["Price"] = "Price must be a number"
			}
			row.dto.Price = price
		}

		if raw := strings.TrimSpace(record[index["quantity"]]); raw != "" {
			quantity, err := strconv.Atoi(raw)
			if err != nil {
				row.errs["Quantity"] = "Quantity must be a whole number"
			}
			row.dto.Quantity = quantity
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Import godoc
// @Summary Import products from a CSV file
// @Description Rows that fail validation are reported and skipped; the others are created.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV with name, price and quantity columns"
// @Success 200 {object} ImportResult
// @Failure 400 {object} apperr.Response
// @Failure 500 {object} apperr.Response
// @Router /api/products/import [post]
func (h *ProductHandler) Import(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		return apperr.Wrap(err, "missing file")
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		h.log.Warn().Err(err).Msg("rejected product import")
		return err
	}

	result := ImportResult{Errors: []ImportRowError{}}
	for _, row := range rows {
		errs := row.errs
		for field, msg := range validateProduct(row.dto) {
			if _, seen := errs[field]; !seen {
				errs[field] = msg
			}
		}
		if len(errs) > 0 {
			result.Errors = append(result.Errors, ImportRowError{Row: row.line, Errors: errs})
			continue
		}

		product := newProduct(row.dto)
		if err := h.repo.Add(r.Context(), &product); err != nil {
			return err
		}
		result.ImportedCount++
	}

	h.log.Info().
		Int("imported", result.ImportedCount).
		Int("rejected", len(result.Errors)).
		Msg("products imported")

	return writeJSON(w, http.StatusOK, result)
}
