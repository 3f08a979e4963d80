package dto

import (
	"fmt"
	"reflect"
	"strings"

	"restaurant-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON (or
// query) name and understands the "decimal" tag used for prices.
func NewValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	if err := v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		return models.ValidPrice(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("registering decimal validation: %w", err)
	}
	return v, nil
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}
