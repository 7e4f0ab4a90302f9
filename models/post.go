// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Post is a single blog post as returned by the posts API.
// ID is assigned by the server; the client only displays and forwards it.
type Post struct {
	// ID is the server-assigned unique identifier.
	ID int64 `json:"id"`

	// Title is the post headline.
	Title string `json:"title"`

	// Content is the post body.
	Content string `json:"content"`
}

// PostInput is the request body for creating or replacing a post.
//
// Both fields are required and validated after whitespace trimming, on the
// client before sending and on the API before storing.
type PostInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ToPost builds a [Post] with the given server-side id.
func (in PostInput) ToPost(id int64) Post {
	return Post{ID: id, Title: in.Title, Content: in.Content}
}

// Trimmed returns a copy with surrounding whitespace removed from both fields.
func (in PostInput) Trimmed() PostInput {
	return PostInput{Title: strings.TrimSpace(in.Title), Content: strings.TrimSpace(in.Content)}
}
