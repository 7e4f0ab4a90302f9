// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns the current posts and view state into a front-end
// agnostic [View], and renders that view as an HTML page.
package render

import (
	"github.com/MKhiriev/go-posts-client/models"
)

// EmptyState tells why a [View] has no items.
type EmptyState int

const (
	// EmptyNone means the view has items.
	EmptyNone EmptyState = iota
	// EmptyNoPosts means the API returned no posts for a plain listing.
	EmptyNoPosts
	// EmptyNoSearchResults means a search matched nothing.
	EmptyNoSearchResults
)

const (
	MessageNoPosts         = "No posts available. Add a new post above!"
	MessageNoSearchResults = "No posts found matching your search term."
)

// Message returns the text shown in place of the list.
func (e EmptyState) Message() string {
	switch e {
	case EmptyNoPosts:
		return MessageNoPosts
	case EmptyNoSearchResults:
		return MessageNoSearchResults
	default:
		return ""
	}
}

// Item is one rendered post. For the post in edit mode Editing is true and
// Title/Content hold the draft values instead of the stored ones.
type Item struct {
	ID      int64
	Title   string
	Content string
	Editing bool
}

// View is the rendered list: either Items or an Empty state, never both.
type View struct {
	Items []Item
	Empty EmptyState
}

// IsEmpty reports whether the view shows an empty-state message.
func (v View) IsEmpty() bool {
	return v.Empty != EmptyNone
}

// Render is a pure function of its inputs.
func Render(posts []models.Post, state models.ViewState) View {
	if len(posts) == 0 {
		if state.SearchTerm != "" {
			return View{Empty: EmptyNoSearchResults}
		}
		return View{Empty: EmptyNoPosts}
	}

	items := make([]Item, 0, len(posts))
	for _, p := range posts {
		item := Item{ID: p.ID, Title: p.Title, Content: p.Content}
		if state.IsEditing(p.ID) {
			item.Editing = true
			item.Title = state.Editing.Title
			item.Content = state.Editing.Content
		}
		items = append(items, item)
	}

	return View{Items: items}
}
