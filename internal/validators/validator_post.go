package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-posts-client/models"
	"github.com/go-playground/validator/v10"
)

// Go field names of the validated structs, as reported by validator.
const (
	fieldTitle         = "Title"
	fieldContent       = "Content"
	fieldSortField     = "Field"
	fieldSortDirection = "Direction"
)

// PostValidator checks post input and list options using the `validate`
// struct tags declared on the models.
type PostValidator struct {
	validate *validator.Validate
}

func NewPostValidator() Validator {
	return &PostValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate accepts [models.PostInput] and [models.SortOptions]. Post input is
// trimmed before checking, so whitespace-only title or content is rejected.
func (v *PostValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.PostInput:
		return mapValidationError(v.validate.StructCtx(ctx, value.Trimmed()))
	case *models.PostInput:
		return mapValidationError(v.validate.StructCtx(ctx, value.Trimmed()))

	case models.SortOptions:
		return mapValidationError(v.validate.StructCtx(ctx, value))
	case *models.SortOptions:
		return mapValidationError(v.validate.StructCtx(ctx, value))

	default:
		return ErrUnsupportedType
	}
}

// mapValidationError converts the first validator failure into this
// package's sentinel errors.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fieldErr := validationErrs[0]
	switch fieldErr.StructField() {
	case fieldTitle, fieldContent:
		return fmt.Errorf("%w: %s failed on %q", ErrEmptyTitleOrContent, strings.ToLower(fieldErr.StructField()), fieldErr.Tag())
	case fieldSortField:
		return fmt.Errorf("%w: %v", ErrInvalidSortField, fieldErr.Value())
	case fieldSortDirection:
		return fmt.Errorf("%w: %v", ErrInvalidSortDirection, fieldErr.Value())
	default:
		return err
	}
}
