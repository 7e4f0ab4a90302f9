// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by all
// binaries. Each binary maps the parts it needs into its own view
// ([ClientConfig], [WebConfig], [APIConfig]).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the client settings database and the posts database of
	// the development API.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds outbound posts API client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Web holds the browser front end listener settings.
	Web Server `envPrefix:"WEB_"`

	// API holds the development posts API listener settings.
	API Server `envPrefix:"API_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration values.
type App struct {
	// LogFile is the file the terminal client writes its logs to. Empty means
	// a "logs" file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the client settings database (the persisted API base URL).
	DB DB `envPrefix:"DB_"`

	// Posts holds the posts database of the development API.
	Posts PostsDB `envPrefix:"POSTS_"`
}

// DB holds connection settings for the client settings database.
type DB struct {
	// DSN is the SQLite file path or DSN,
	// e.g. "posts-client.db" or "file:posts-client.db?_busy_timeout=5000".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// PostsDB holds connection settings for the development API posts storage.
type PostsDB struct {
	// Driver selects the backend: "memory", "sqlite3" or "pgx".
	// Env: STORAGE_POSTS_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string for the sqlite3 and pgx drivers.
	// Env: STORAGE_POSTS_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings for the outbound posts API client.
type Adapter struct {
	// RequestTimeout bounds a single API request. Zero keeps the HTTP client
	// default of no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds listener settings for an inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address to listen on, in "host:port" format.
	// Env: WEB_ADDRESS / API_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// BasePath is the path prefix the posts routes are mounted under.
	// Only used by the development API.
	// Env: API_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// RequestTimeout bounds a single inbound request.
	// Env: WEB_REQUEST_TIMEOUT / API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage drivers accepted by [PostsDB.Driver].
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// defaults is the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:    DB{DSN: "posts-client.db"},
			Posts: PostsDB{Driver: DriverMemory},
		},
		Web: Server{
			HTTPAddress:    "localhost:8081",
			RequestTimeout: 30 * time.Second,
		},
		API: Server{
			HTTPAddress:    "localhost:5002",
			BasePath:       "/api",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from the
// process environment, the command-line arguments, the optional JSON file and
// the built-in defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
