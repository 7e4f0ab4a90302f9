package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-posts-client/models"
	"github.com/stretchr/testify/assert"
)

func TestPostValidator_PostInput(t *testing.T) {
	v := NewPostValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "valid", obj: models.PostInput{Title: "Hello", Content: "World"}},
		{name: "valid pointer", obj: &models.PostInput{Title: "Hello", Content: "World"}},
		{name: "empty title", obj: models.PostInput{Content: "World"}, wantErr: ErrEmptyTitleOrContent},
		{name: "empty content", obj: models.PostInput{Title: "Hello"}, wantErr: ErrEmptyTitleOrContent},
		{name: "whitespace only", obj: models.PostInput{Title: "   ", Content: "\t\n"}, wantErr: ErrEmptyTitleOrContent},
		{name: "whitespace pointer", obj: &models.PostInput{Title: "Hello", Content: " "}, wantErr: ErrEmptyTitleOrContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostValidator_SortOptions(t *testing.T) {
	v := NewPostValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "no sort", obj: models.SortOptions{}},
		{name: "direction without field", obj: models.SortOptions{Direction: models.SortDesc}},
		{name: "id asc", obj: models.SortOptions{Field: models.SortByID, Direction: models.SortAsc}},
		{name: "content default direction", obj: &models.SortOptions{Field: models.SortByContent}},
		{name: "bad field", obj: models.SortOptions{Field: "author"}, wantErr: ErrInvalidSortField},
		{name: "bad direction", obj: models.SortOptions{Field: models.SortByTitle, Direction: "up"}, wantErr: ErrInvalidSortDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostValidator_UnsupportedType(t *testing.T) {
	v := NewPostValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Post{}), ErrUnsupportedType)
	// search terms are not validated: an empty term means "list everything"
	assert.ErrorIs(t, v.Validate(context.Background(), "first"), ErrUnsupportedType)
}
