package service

import (
	"github.com/MKhiriev/go-posts-client/models"
)

// Alert messages shown to the user.
const (
	AlertLoadFailed        = "Error loading posts: "
	AlertSearchFailed      = "Error searching posts: "
	AlertEmptyCreate       = "Title and Content cannot be empty."
	AlertCreateFailed      = "Error adding post: "
	AlertDeleteFailed      = "Error deleting post."
	AlertEmptyUpdate       = "Title and Content cannot be empty during update."
	AlertUpdateFailed      = "Error updating post: "
	AlertInvalidSortOption = "Invalid sort options: "
)

// State is a point-in-time copy of the controller.
type State struct {
	// Config is the last base URL used, shown in the base URL input.
	Config models.ClientConfig
	// Posts is the list of the last successful list or search response.
	Posts []models.Post
	// View is the ephemeral UI state.
	View models.ViewState
	// Alert is the pending user alert, empty when there is none.
	Alert string
	// Loaded is true once any list or search response was applied.
	Loaded bool
}

func (s State) clone() State {
	posts := make([]models.Post, len(s.Posts))
	copy(posts, s.Posts)

	s.Posts = posts
	s.View = s.View.Clone()
	return s
}

func (s State) hasPost(id int64) bool {
	for _, p := range s.Posts {
		if p.ID == id {
			return true
		}
	}
	return false
}
