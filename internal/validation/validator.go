package validation

import (
	"fmt"
	"reflect"
	"strings"

	"pocketledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("transaction_kind", validateTransactionKind)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate validates a struct and returns formatted error details
func (v *Validator) Validate(i interface{}) []string {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, formatFieldError(fieldError))
	}
	return details
}

// Custom validation functions

// validatePositiveAmount validates that a decimal string parses and is strictly positive
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.GreaterThan(decimal.Zero)
}

// validateTransactionKind validates the income/expense enum
func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.IsValidKind(fl.Field().String())
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: this field is required", fe.Field())
	case "positive_amount":
		return fmt.Sprintf("%s: must be a positive decimal amount", fe.Field())
	case "transaction_kind":
		return fmt.Sprintf("%s: must be one of income, expense", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s: value is out of allowed range", fe.Field())
	default:
		return fmt.Sprintf("%s: failed validation rule %s", fe.Field(), fe.Tag())
	}
}
