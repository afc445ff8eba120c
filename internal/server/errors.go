// Package server provides the HTTP server for the portfolio dashboard.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/yaswanthreddy/portfolio/internal/page"
	"github.com/yaswanthreddy/portfolio/internal/schemas"
)

// ErrNotFound indicates a named resource does not exist
type ErrNotFound struct {
	Resource string
	Name     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Name)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound       *ErrNotFound
		invalid        *ErrValidation
		schemaErr      *schemas.ValidationError
		validationErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &notFound), errors.Is(err, page.ErrUnknownView):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &schemaErr), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
