// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests, before the service layer
// is reached. Callers can match against them with [errors.Is].
var (
	// ErrInvalidPostID is returned when the {id} path segment is not a
	// base-10 int64.
	ErrInvalidPostID = errors.New("invalid post id")

	// ErrInvalidRequestBody is returned when a create or update body is not a
	// JSON object.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
