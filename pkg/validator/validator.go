package validator

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errs[field] = field + " is required"
			case "email":
				errs[field] = field + " must be a valid email address"
			case "min":
				errs[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errs[field] = field + " must be at most " + e.Param() + " characters"
			case "len":
				errs[field] = field + " must be exactly " + e.Param() + " characters"
			case "numeric":
				errs[field] = field + " must contain digits only"
			case "oneof":
				errs[field] = field + " must be one of: " + e.Param()
			case "datetime":
				errs[field] = field + " must match the format " + e.Param()
			default:
				errs[field] = field + " is invalid"
			}
		}
	}

	return errs
}

// Summary joins the field messages into one line suitable for an alert.
func (cv *CustomValidator) Summary(err error) string {
	errs := cv.FormatValidationErrors(err)
	if len(errs) == 0 {
		return "Validation failed"
	}

	messages := make([]string, 0, len(errs))
	for _, msg := range errs {
		messages = append(messages, msg)
	}
	sort.Strings(messages)
	return strings.Join(messages, "; ")
}
