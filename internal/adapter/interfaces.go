// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the posts REST API.
//
// The primary abstraction is [PostsAdapter], which decouples the controller
// from HTTP. The package ships a resty-based implementation
// ([NewHTTPPostsAdapter]). The API base URL is not part of the adapter: it is
// passed to every call, because the user may change it at any time.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404). Server-reported failures are returned
// as [*APIError], which carries the decoded {"error": ...} message. Failures to
// reach the server at all wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-posts-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/posts_adapter_mock.go -package=mock

// PostsAdapter defines communication with the posts API rooted at baseURL.
type PostsAdapter interface {
	// List fetches all posts via GET {baseURL}/posts. When sort is set, the
	// sort and direction query parameters are added; otherwise the query is
	// omitted entirely.
	List(ctx context.Context, baseURL string, sort models.SortOptions) ([]models.Post, error)

	// Search fetches posts matching term via
	// GET {baseURL}/posts/search?title=<term>&content=<term>.
	Search(ctx context.Context, baseURL string, term string) ([]models.Post, error)

	// Create sends POST {baseURL}/posts with a JSON {title, content} body and
	// returns the post created by the server.
	Create(ctx context.Context, baseURL string, input models.PostInput) (models.Post, error)

	// Update sends PUT {baseURL}/posts/{id} with a JSON {title, content} body
	// and returns the post as stored by the server.
	Update(ctx context.Context, baseURL string, id int64, input models.PostInput) (models.Post, error)

	// Delete sends DELETE {baseURL}/posts/{id}. Only status 200 counts as
	// success; any other status is returned as an [*APIError].
	Delete(ctx context.Context, baseURL string, id int64) error
}
