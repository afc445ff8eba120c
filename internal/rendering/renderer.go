package rendering

import (
	"fmt"
	"html/template"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

// Template maps a single record to its card markup.
// Implementations must be pure: the same record always yields the same fragment.
type Template[R types.Record] func(R) (template.HTML, error)

// Render maps records to cards with tmpl, one card per record, in input order.
// Nil or empty input yields an empty, non-nil slice.
// The first record with a missing required field aborts rendering with a
// *MissingFieldError and no partial output.
func Render[R types.Record](records []R, tmpl Template[R]) ([]template.HTML, error) {
	cards := make([]template.HTML, 0, len(records))
	for i, rec := range records {
		if err := CheckRequired(rec, i); err != nil {
			return nil, err
		}

		card, err := tmpl(rec)
		if err != nil {
			return nil, &RenderError{
				Message: fmt.Sprintf("failed to render %s record #%d", rec.Kind(), i),
				Cause:   err,
			}
		}
		cards = append(cards, card)
	}
	return cards, nil
}
