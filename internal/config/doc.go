// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Development defaults for fields left unset
//
// The main entry point is [GetStructuredConfig]. The merged configuration is
// validated before use: outside development mode the insecure baked-in
// credential defaults are rejected at startup.
package config
