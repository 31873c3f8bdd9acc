package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Any of them
// aborts startup.
var (
	// ErrInvalidStorageConfigs indicates missing content store credentials
	// (bucket slug, read key or write key).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration: bucket slug, read key and write key are required")
	// ErrMissingTokenSignKey indicates that no token signing key is set in
	// production, or that production is configured with the development key.
	ErrMissingTokenSignKey = errors.New("token sign key is required in production")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
