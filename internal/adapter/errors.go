package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport wraps failures where no HTTP response was received.
	ErrTransport = errors.New("transport error")
	// ErrInvalidBaseURL is returned before any request when the base URL
	// cannot be turned into an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid api base url")
	// ErrDecodingResponse is returned when a 2xx body is not the expected JSON.
	ErrDecodingResponse = errors.New("error decoding response")
)

// APIError is a server-reported failure: a response was received but its
// status was not the expected success status.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Message is the "error" field of the JSON body, if any.
	Message string
	// Err is the sentinel matching Status.
	Err error
}

// Error returns the server message, or the status text when the body carried
// no message.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if text := http.StatusText(e.Status); text != "" {
		return fmt.Sprintf("%d %s", e.Status, text)
	}
	return fmt.Sprintf("http %d", e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
