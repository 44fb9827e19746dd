package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"warehouse/internal/models"
)

// maxTopUpAmount bounds how much stock may be added in a single request.
// It is a per-request bound only; the resulting total stock is unbounded.
var maxTopUpAmount = decimal.NewFromInt(10000)

// FieldError names a single offending field and the reason it was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field-level violation found in a request.
// Failures are collected, not short-circuited to the first.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

var validate = newValidator()

// newValidator configures a validator that reports field names from their
// json tags, so errors reference the names clients actually send.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCreateProduct checks a product creation payload.
func ValidateCreateProduct(req *models.CreateProductRequest) error {
	errs := collectStructErrors(req)
	if req.Stock != nil && req.Stock.IsNegative() {
		errs = append(errs, FieldError{Field: "stock", Message: "stock must not be negative"})
	}
	return asError(errs)
}

// ValidateUpdateProduct checks a partial product update payload.
func ValidateUpdateProduct(req *models.UpdateProductRequest) error {
	errs := collectStructErrors(req)
	if req.Stock != nil && req.Stock.IsNegative() {
		errs = append(errs, FieldError{Field: "stock", Message: "stock must not be negative"})
	}
	return asError(errs)
}

// ValidateStockTopUp checks the amount of stock being added in a top-up.
func ValidateStockTopUp(amount decimal.Decimal) error {
	var errs []FieldError
	if !amount.IsPositive() {
		errs = append(errs, FieldError{Field: "stock", Message: "stock to add must be a positive value"})
	}
	if amount.GreaterThan(maxTopUpAmount) {
		errs = append(errs, FieldError{Field: "stock", Message: "stock to add cannot exceed 10,000"})
	}
	return asError(errs)
}

// ValidateOrder checks the field-level rules of an order request. Product
// existence is checked separately against the store.
func ValidateOrder(req *models.OrderRequest) error {
	return asError(collectStructErrors(req))
}

// collectStructErrors runs the tag-driven rules and translates every
// violation into a FieldError.
func collectStructErrors(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var errs []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		errs = append(errs, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func asError(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}
