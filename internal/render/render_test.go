package render

import (
	"testing"

	"github.com/MKhiriev/go-posts-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var posts = []models.Post{
	{ID: 1, Title: "First post", Content: "This is the first post."},
	{ID: 2, Title: "Second post", Content: "This is the second post."},
}

func TestRender_EmptyStates(t *testing.T) {
	tests := []struct {
		name    string
		posts   []models.Post
		state   models.ViewState
		want    EmptyState
		message string
	}{
		{name: "nil list, no search", posts: nil, want: EmptyNoPosts, message: MessageNoPosts},
		{name: "empty list, no search", posts: []models.Post{}, want: EmptyNoPosts, message: MessageNoPosts},
		{name: "empty list, search", posts: []models.Post{}, state: models.ViewState{SearchTerm: "zzz"}, want: EmptyNoSearchResults, message: MessageNoSearchResults},
		{name: "empty list, sorted", posts: nil, state: models.ViewState{Sort: models.SortOptions{Field: models.SortByTitle}}, want: EmptyNoPosts, message: MessageNoPosts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Render(tt.posts, tt.state)

			assert.True(t, view.IsEmpty())
			assert.Empty(t, view.Items)
			assert.Equal(t, tt.want, view.Empty)
			assert.Equal(t, tt.message, view.Empty.Message())
		})
	}
}

func TestRender_Items(t *testing.T) {
	view := Render(posts, models.ViewState{SearchTerm: "post"})

	require.False(t, view.IsEmpty())
	assert.Equal(t, EmptyNone, view.Empty)
	assert.Equal(t, "", view.Empty.Message())
	assert.Equal(t, []Item{
		{ID: 1, Title: "First post", Content: "This is the first post."},
		{ID: 2, Title: "Second post", Content: "This is the second post."},
	}, view.Items)
}

func TestRender_EditMode(t *testing.T) {
	state := models.ViewState{Editing: &models.EditDraft{ID: 2, Title: "draft title", Content: ""}}

	view := Render(posts, state)

	require.Len(t, view.Items, 2)
	assert.False(t, view.Items[0].Editing)
	assert.Equal(t, "First post", view.Items[0].Title)

	assert.True(t, view.Items[1].Editing)
	assert.Equal(t, "draft title", view.Items[1].Title)
	assert.Equal(t, "", view.Items[1].Content)
}

func TestRender_EditModeForMissingPost(t *testing.T) {
	view := Render(posts, models.ViewState{Editing: &models.EditDraft{ID: 99}})

	for _, item := range view.Items {
		assert.False(t, item.Editing)
	}
}

func TestRender_IsPure(t *testing.T) {
	in := []models.Post{{ID: 1, Title: "a", Content: "b"}}
	state := models.ViewState{Editing: &models.EditDraft{ID: 1, Title: "x", Content: "y"}}

	first := Render(in, state)
	second := Render(in, state)

	assert.Equal(t, first, second)
	assert.Equal(t, "a", in[0].Title)
}
