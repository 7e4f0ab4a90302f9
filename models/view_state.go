// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EditDraft holds the values of the inline edit form of a single post.
type EditDraft struct {
	ID      int64
	Title   string
	Content string
}

// ViewState is the ephemeral UI state of the posts screen. It is never
// persisted.
//
// Editing and SearchTerm are reset whenever the post list is reloaded. Sort is
// replaced by the sort used for the reload. CreateDraft survives reloads and is
// cleared only after a post was created successfully.
type ViewState struct {
	// Editing is the post currently in edit mode, or nil.
	Editing *EditDraft

	// SearchTerm is the trimmed term of the search that produced the current
	// list, or empty when the list came from a plain list request.
	SearchTerm string

	// Sort is the sort selection used for the current list.
	Sort SortOptions

	// CreateDraft is the content of the post creation form.
	CreateDraft PostInput
}

// IsEditing reports whether the post with the given id is in edit mode.
func (v ViewState) IsEditing(id int64) bool {
	return v.Editing != nil && v.Editing.ID == id
}

// Clone returns a deep copy of v.
func (v ViewState) Clone() ViewState {
	if v.Editing != nil {
		e := *v.Editing
		v.Editing = &e
	}
	return v
}
