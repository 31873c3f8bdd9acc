// Package config provides configuration loading, merging, defaulting and
// validation for the service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Missing content store credentials, or a missing token signing key in
// production, make [GetStructuredConfig] fail so that the process refuses
// to start.
package config
