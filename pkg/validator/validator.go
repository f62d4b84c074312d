package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports fields by their json name when they have one.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["_"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = field + " is required"
		case "email":
			errs[field] = field + " must be a valid email address"
		case "min":
			errs[field] = field + " must be at least " + e.Param() + " characters"
		case "gte":
			errs[field] = field + " must be greater than or equal to " + e.Param()
		case "lte":
			errs[field] = field + " must be less than or equal to " + e.Param()
		case "oneof":
			errs[field] = field + " must be one of: " + e.Param()
		default:
			errs[field] = field + " is invalid"
		}
	}

	return errs
}
