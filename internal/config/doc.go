// Package config provides configuration loading, merging, and validation
// facilities for the posts client binaries.
//
// Configuration is assembled from multiple sources. When two sources set the
// same field, the earlier one in this list wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] for the terminal client,
// [GetWebConfig] for the browser front end and [GetAPIConfig] for the
// development posts API.
package config
