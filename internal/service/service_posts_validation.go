package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/validators"
	"github.com/MKhiriev/go-posts-client/models"
)

// PostValidationService rejects invalid input before it reaches the wrapped
// [PostService]. Validation failures wrap both [ErrInvalidDataProvided] and
// the validators sentinel.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService(validator validators.Validator) PostServiceWrapper {
	return &PostValidationService{
		validator: validator,
	}
}

func (v *PostValidationService) List(ctx context.Context, sort models.SortOptions) ([]models.Post, error) {
	if err := v.validator.Validate(ctx, sort); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.List(ctx, sort)
}

func (v *PostValidationService) Search(ctx context.Context, title, content string) ([]models.Post, error) {
	return v.inner.Search(ctx, title, content)
}

func (v *PostValidationService) Create(ctx context.Context, input models.PostInput) (models.Post, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, input)
}

func (v *PostValidationService) Update(ctx context.Context, id int64, input models.PostInput) (models.Post, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, input)
}

func (v *PostValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
