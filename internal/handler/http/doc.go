// Package http implements the HTTP transport layer of the posts client.
//
// It contains two chi routers. [WebHandler] serves the browser front end: a
// server-rendered page whose forms drive the shared posts controller. [Handler]
// serves the development posts API consumed by both front ends. Request
// tracing, access logging and method checks are handled by middlewares in
// this package before requests reach the service layer.
package http
