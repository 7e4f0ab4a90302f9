// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-posts-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ClientConfigRepository is the client's durable key/value store for the
// API base URL.
type ClientConfigRepository interface {
	// Load returns the saved configuration or [ErrClientConfigNotFound].
	Load(ctx context.Context) (models.ClientConfig, error)
	// Save overwrites the saved configuration.
	Save(ctx context.Context, cfg models.ClientConfig) error
}

// PostRepository stores the posts served by the development API.
type PostRepository interface {
	// List returns all posts ordered by sort, or by id when sort is not set.
	List(ctx context.Context, sort models.SortOptions) ([]models.Post, error)
	// Search returns posts whose title contains title or whose content
	// contains content, case-insensitively. An empty argument matches nothing;
	// both empty matches everything.
	Search(ctx context.Context, title, content string) ([]models.Post, error)
	Create(ctx context.Context, input models.PostInput) (models.Post, error)
	// Update replaces title and content of post id, or returns [ErrPostNotFound].
	Update(ctx context.Context, id int64, input models.PostInput) (models.Post, error)
	// Delete removes post id, or returns [ErrPostNotFound].
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator translates driver-specific errors into the sentinel
// errors of this package. Unknown errors are returned unchanged.
type ErrorClassificator interface {
	Classify(err error) error
}
