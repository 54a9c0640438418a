// SPDX-License-Identifier: MIT
// Package: kuranet/params
//
// validate.go — struct-tag validation shared by every parameter document.

package params

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the package-wide validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateStruct runs tag validation and wraps the first failure with
// ErrInvalidParams.
func validateStruct(kind string, v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%s: %v: %w", kind, formatValidationError(err), ErrInvalidParams)
	}

	return nil
}

// invalidf builds a cross-field validation error.
func invalidf(kind, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", kind, fmt.Sprintf(format, args...), ErrInvalidParams)
}

// formatValidationError renders the first validator failure as
// "<Namespace>: <reason>".
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min", "gte":
		return fmt.Errorf("%s: must be at least %s", field, e.Param())
	case "max", "lte":
		return fmt.Errorf("%s: must not exceed %s", field, e.Param())
	case "gt":
		return fmt.Errorf("%s: must be greater than %s", field, e.Param())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s]", field, e.Param())
	default:
		return fmt.Errorf("%s: failed %q validation", field, e.Tag())
	}
}
