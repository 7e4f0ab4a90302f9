// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-posts-client/internal/render"
	"github.com/MKhiriev/go-posts-client/models"
)

// PostsController is the client controller shared by the terminal and web
// front ends. It owns the rendered posts, the view state and one pending
// alert.
//
// Operations that talk to the API take the [models.ClientConfig] explicitly
// and never return errors: local validation failures and server-reported
// failures become the pending alert, transport failures are only logged.
// Responses are applied in the order they complete.
type PostsController interface {
	// Initialize loads the saved base URL. When one exists it becomes the
	// current config, exactly one unsorted List is issued, and true is
	// returned.
	Initialize(ctx context.Context) (models.ClientConfig, bool)

	// List saves cfg, then fetches the posts with the given sort. On success
	// the list is replaced and edit mode and search are reset.
	List(ctx context.Context, cfg models.ClientConfig, sort models.SortOptions)

	// Search fetches the posts matching the trimmed term in title or content.
	// An empty term behaves exactly like an unsorted List.
	Search(ctx context.Context, cfg models.ClientConfig, term string)

	// Create validates and sends a new post, then reloads the unsorted list.
	Create(ctx context.Context, cfg models.ClientConfig, title, content string)

	// Delete removes post id and reloads the list with the current sort.
	Delete(ctx context.Context, cfg models.ClientConfig, id int64)

	// EnterEditMode opens the inline edit form for a rendered post. Ids that
	// are not rendered are ignored.
	EnterEditMode(id int64, title, content string)

	// CancelEdit discards the edit form by reloading the list with the
	// current sort.
	CancelEdit(ctx context.Context, cfg models.ClientConfig)

	// Update validates and sends the edited post, then reloads the list with
	// the current sort.
	Update(ctx context.Context, cfg models.ClientConfig, id int64, title, content string)

	// DismissAlert clears the pending alert.
	DismissAlert()

	// Snapshot returns a copy of the controller state.
	Snapshot() State

	// View renders the current posts and view state.
	View() render.View
}

// PostService is the business layer of the development posts API.
type PostService interface {
	List(ctx context.Context, sort models.SortOptions) ([]models.Post, error)
	Search(ctx context.Context, title, content string) ([]models.Post, error)
	Create(ctx context.Context, input models.PostInput) (models.Post, error)
	Update(ctx context.Context, id int64, input models.PostInput) (models.Post, error)
	Delete(ctx context.Context, id int64) error
}

// PostServiceWrapper decorates a PostService with additional behaviour such as
// validation.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
