// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// EnvironmentProduction is the App.Environment value that enables
// production-only safeguards (secure cookies, mandatory signing key).
const EnvironmentProduction = "production"

// StructuredConfig is the top-level configuration container for the
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, password
	// hashing cost, admin list and the runtime environment.
	App App `envPrefix:"APP_"`

	// Storage holds the external content store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener, cookie and route guard settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds settings of the CPU-bound worker pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// Environment is "production" or anything else (treated as development).
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the secret used to sign and verify session tokens.
	// Required in production.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// InsecureSignKey is set by applyDefaults when TokenSignKey fell back to
	// the built-in development key. Never read from any source.
	InsecureSignKey bool

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session token (default 24h).
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of a token reissued by the
	// refresh endpoint (default 7 days).
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// AdminEmails lists accounts that receive the isAdmin claim.
	// Env: APP_ADMIN_EMAILS (comma-separated)
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// DefaultTimezone is applied at signup when the client sends none.
	// Env: APP_DEFAULT_TIMEZONE
	DefaultTimezone string `env:"DEFAULT_TIMEZONE"`

	// Version is reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether production safeguards are enabled.
func (a App) IsProduction() bool {
	return strings.EqualFold(a.Environment, EnvironmentProduction)
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// Cosmic holds the headless content store settings.
	Cosmic Cosmic `envPrefix:"COSMIC_"`
}

// Cosmic holds connection settings for the Cosmic content store REST API.
type Cosmic struct {
	// BaseURL of the REST API, e.g. "https://api.cosmicjs.com/v3".
	// Env: STORAGE_COSMIC_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// BucketSlug identifies the bucket holding all objects.
	// Env: STORAGE_COSMIC_BUCKET_SLUG
	BucketSlug string `env:"BUCKET_SLUG"`

	// ReadKey authorizes read requests.
	// Env: STORAGE_COSMIC_READ_KEY
	ReadKey string `env:"READ_KEY"`

	// WriteKey authorizes write requests.
	// Env: STORAGE_COSMIC_WRITE_KEY
	WriteKey string `env:"WRITE_KEY"`

	// ObjectType is the object type slug of member accounts.
	// Env: STORAGE_COSMIC_OBJECT_TYPE
	ObjectType string `env:"OBJECT_TYPE"`

	// RequestTimeout bounds every call to the store.
	// Env: STORAGE_COSMIC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network, cookie and routing settings for the inbound HTTP
// transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CookieName is the session cookie name (default "session").
	// Env: SERVER_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// PagesDir is the directory of prebuilt pages served behind the route guard.
	// Env: SERVER_PAGES_DIR
	PagesDir string `env:"PAGES_DIR"`

	// ProtectedRoutes are path prefixes that need a session.
	// Env: SERVER_PROTECTED_ROUTES
	ProtectedRoutes []string `env:"PROTECTED_ROUTES" envSeparator:","`

	// AuthOnlyRoutes are path prefixes only reachable without a session.
	// Env: SERVER_AUTH_ONLY_ROUTES
	AuthOnlyRoutes []string `env:"AUTH_ONLY_ROUTES" envSeparator:","`

	// LoginPath is where protected routes redirect anonymous users.
	// Env: SERVER_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`

	// HomePath is where auth-only routes redirect signed-in users.
	// Env: SERVER_HOME_PATH
	HomePath string `env:"HOME_PATH"`

	// AuthRateLimit is the number of signup/login attempts allowed per
	// client IP per minute.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit int `env:"AUTH_RATE_LIMIT"`

	// AuthRateBurst is the burst size of the auth rate limiter.
	// Env: SERVER_AUTH_RATE_BURST
	AuthRateBurst int `env:"AUTH_RATE_BURST"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For,
	// X-Real-IP and True-Client-IP. Enable it only behind a proxy that
	// overwrites those headers.
	// Env: SERVER_TRUST_PROXY_HEADERS
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`
}

// Workers holds configuration of the CPU-bound worker pool.
type Workers struct {
	// HashConcurrency bounds simultaneous password hash operations.
	// Env: WORKERS_HASH_CONCURRENCY
	HashConcurrency int `env:"HASH_CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied after merging; see applyDefaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
