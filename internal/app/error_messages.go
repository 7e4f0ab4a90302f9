// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// development posts API handlers.
//
// All Msg* constants are human-readable strings written into {"error": ...}
// response bodies. Clients show them to the user verbatim, so the wording is
// part of the API contract.
package app

const (
	// MsgTitleAndContentRequired is returned when a created or updated post
	// has an empty or whitespace-only title or content.
	MsgTitleAndContentRequired = "Title and Content are required!"

	// MsgPostNotFound is returned when no post has the requested id.
	MsgPostNotFound = "Post not found"

	// MsgInvalidSortField is returned when ?sort= names an unknown field.
	MsgInvalidSortField = "Invalid sort field"

	// MsgInvalidSortDirection is returned when ?direction= is neither asc
	// nor desc.
	MsgInvalidSortDirection = "Invalid sort direction"

	// MsgInvalidPostID is returned when the {id} path segment is not an
	// integer.
	MsgInvalidPostID = "Invalid post id"

	// MsgInvalidRequestBody is returned when the body is not a JSON object.
	MsgInvalidRequestBody = "Invalid JSON body"

	// MsgPostDeleted is the {"message": ...} of a successful delete.
	MsgPostDeleted = "Post with id %d has been deleted successfully."
)
