// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks post input and list options before they reach the
// posts API or the posts storage.
//
// [PostValidator] is backed by go-playground/validator and the `validate`
// struct tags on the models. Failures are reported as the sentinel errors in
// errors.go so callers can branch with [errors.Is].
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates an arbitrary input value.
type Validator interface {
	Validate(context.Context, any) error
}
