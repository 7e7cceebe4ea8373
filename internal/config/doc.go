// Package config loads, merges and validates the server configuration.
//
// Configuration is assembled from several sources. For every field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
