package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of the posts API
	// so handlers can map them to 400 in one place.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
