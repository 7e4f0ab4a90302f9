package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-posts-client/internal/app"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/internal/store"
	"github.com/MKhiriev/go-posts-client/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidPostID:               http.StatusBadRequest,
	ErrInvalidRequestBody:          http.StatusBadRequest,

	store.ErrPostNotFound: http.StatusNotFound,
	store.ErrInvalidPost:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessages is checked in order; the first match wins.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrEmptyTitleOrContent, app.MsgTitleAndContentRequired},
	{store.ErrInvalidPost, app.MsgTitleAndContentRequired},
	{validators.ErrInvalidSortField, app.MsgInvalidSortField},
	{validators.ErrInvalidSortDirection, app.MsgInvalidSortDirection},
	{store.ErrPostNotFound, app.MsgPostNotFound},
	{ErrInvalidPostID, app.MsgInvalidPostID},
	{ErrInvalidRequestBody, app.MsgInvalidRequestBody},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError never leaks internal error text: unknown errors get the
// status text.
func messageFromError(err error, status int) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return http.StatusText(status)
}
