package rendering

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yaswanthreddy/portfolio/internal/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their content-file name rather than the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// CheckRequired returns a *MissingFieldError for the first required field
// that rec leaves empty. index is recorded on the error as-is.
func CheckRequired(rec types.Record, index int) error {
	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &MissingFieldError{
				Kind:  rec.Kind(),
				Field: fieldPath(verrs[0].Namespace()),
				Index: index,
			}
		}
		return &RenderError{Message: "failed to check required fields", Cause: err}
	}

	if pub, ok := rec.(types.Publication); ok {
		if _, _, hasVenue := pub.Venue(); !hasVenue {
			return &MissingFieldError{Kind: types.KindPublication, Field: "venue", Index: index}
		}
	}
	return nil
}

// fieldPath drops the leading struct name from a validator namespace,
// so "Experience.period.start" becomes "period.start".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
