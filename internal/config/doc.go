// Package config provides configuration loading, merging, and validation
// facilities for the notes server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (only fills variables that are not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied to the merged result before it is validated. The main
// entry point is [GetStructuredConfig].
package config
