// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. JSON config file (optional, pointed to by the CONFIG variable)
//
// The main entry point is [GetStructuredConfig], which builds the merged
// configuration, applies defaults, and validates it before the server starts.
package config
