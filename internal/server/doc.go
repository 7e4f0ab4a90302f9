// Package server runs an HTTP handler until the process is asked to stop.
//
// It covers startup, signal handling and graceful shutdown for the browser
// front end and the development posts API.
package server
