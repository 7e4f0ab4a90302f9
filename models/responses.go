package models

// ErrorResponse is the JSON error body produced by the posts API, e.g.
// {"error": "Title and Content are required!"}.
//
// encoding/json matches keys case-insensitively, so bodies using "Error" as
// the key decode into the same field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body of successful operations that return no
// resource, such as a delete.
type MessageResponse struct {
	Message string `json:"message"`
}
