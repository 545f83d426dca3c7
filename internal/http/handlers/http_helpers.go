package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/product-catalog/internal/apperr"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func writeError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, apperr.Response{StatusCode: status, Message: message})
}

// productID reads the id route parameter, falling back to the id query
// parameter for the literal /id route.
func productID(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		idStr = r.URL.Query().Get("id")
	}
	if idStr == "" {
		return 0, apperr.New("product ID is required")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, apperr.Wrap(err, "invalid product ID")
	}
	return id, nil
}

// pagination parses pageNumber and pageSize, defaulting to 1 and 10.
// ok is false when either value is not a positive integer.
func pagination(r *http.Request) (pageNumber, pageSize int, ok bool) {
	q := r.URL.Query()
	pageNumber, ok1 := positiveInt(q.Get("pageNumber"), 1)
	pageSize, ok2 := positiveInt(q.Get("pageSize"), 10)
	return pageNumber, pageSize, ok1 && ok2
}

func positiveInt(s string, def int) (int, bool) {
	if s == "" {
		return def, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return v, false
	}
	return v, true
}
