package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationErrors maps a CreateProductDto field name to the message
// describing its broken constraint.
type ValidationErrors map[string]string

var validate = newValidator()

// minPrice is exclusive.
var minPrice = decimal.RequireFromString("0.01")

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterStructValidation(validatePrice, CreateProductDto{})
	return v
}

// validatePrice compares exactly; a zero price counts as missing.
func validatePrice(sl validator.StructLevel) {
	dto := sl.Current().Interface().(CreateProductDto)
	switch {
	case dto.Price.IsZero():
		sl.ReportError(dto.Price, "Price", "Price", "required", "")
	case !dto.Price.GreaterThan(minPrice):
		sl.ReportError(dto.Price, "Price", "Price", "gt", minPrice.String())
	}
}

var validationMessages = map[string]string{
	"Name.notblank":  "Name is required",
	"Name.min":       "Name must be between 3 and 100 characters",
	"Name.max":       "Name must be between 3 and 100 characters",
	"Price.required": "Price is required",
	"Price.gt":       "Price must be greater than 0.01",
	"Quantity.min":   "Quantity must be non-negative",
}

// validateProduct checks every field of dto and reports all violations,
// one message per field.
func validateProduct(dto CreateProductDto) ValidationErrors {
	errs := ValidationErrors{}

	err := validate.Struct(dto)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs[""] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		msg, ok := validationMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[fe.Field()] = msg
	}
	return errs
}
