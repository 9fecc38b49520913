// Package validate runs struct-tag schema checks at the service's trust
// boundaries: decoded request bodies on the way in and decoded API responses
// in the fetch helper.
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/leggiero/spotmap/internal/domain"
)

// std is safe for concurrent use; validator caches struct metadata internally.
var std = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so messages match what the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct checks s against its `validate` tags and returns the first failing
// field, in declaration order, as a *domain.ValidationError.
//
// A `required` failure becomes "Missing `field`"; any other rule becomes
// "Invalid `field`". Values that are not structs (slices, maps, nil) are not
// checked and yield nil.
func Struct(s any) error {
	err := std.Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return domain.MissingField(fe.Field())
		}
		return domain.InvalidField(fe.Field())
	}
	return err
}
