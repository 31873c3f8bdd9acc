// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"runtime"
	"time"
)

// DevelopmentTokenSignKey is the signing key used outside production when
// none is configured. It is public and therefore insecure: tokens signed
// with it can be forged by anyone who has read this file.
const DevelopmentTokenSignKey = "coffee-closer-network-development-signing-key"

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

var (
	defaultProtectedRoutes = []string{"/dashboard", "/profile", "/matches", "/settings", "/admin"}
	defaultAuthOnlyRoutes  = []string{"/login", "/signup"}
)

// applyDefaults fills every unset field with its default. The development
// signing key is only applied outside production; InsecureSignKey records
// that it was.
func (cfg *StructuredConfig) applyDefaults() {
	app := &cfg.App
	if app.Environment == "" {
		app.Environment = "development"
	}
	if app.TokenSignKey == "" && !app.IsProduction() {
		app.TokenSignKey = DevelopmentTokenSignKey
		app.InsecureSignKey = true
	}
	if app.TokenIssuer == "" {
		app.TokenIssuer = "coffee-closer-network"
	}
	if app.TokenDuration == 0 {
		app.TokenDuration = 24 * time.Hour
	}
	if app.RefreshTokenDuration == 0 {
		app.RefreshTokenDuration = 7 * 24 * time.Hour
	}
	if app.PasswordHashCost == 0 {
		app.PasswordHashCost = 12
	}
	if app.DefaultTimezone == "" {
		app.DefaultTimezone = "UTC"
	}

	cosmic := &cfg.Storage.Cosmic
	if cosmic.BaseURL == "" {
		cosmic.BaseURL = "https://api.cosmicjs.com/v3"
	}
	if cosmic.ObjectType == "" {
		cosmic.ObjectType = "user-profiles"
	}
	if cosmic.RequestTimeout == 0 {
		cosmic.RequestTimeout = 10 * time.Second
	}

	srv := &cfg.Server
	if srv.HTTPAddress == "" {
		srv.HTTPAddress = "localhost:8080"
	}
	if srv.RequestTimeout == 0 {
		srv.RequestTimeout = 15 * time.Second
	}
	if srv.CookieName == "" {
		srv.CookieName = "session"
	}
	if len(srv.ProtectedRoutes) == 0 {
		srv.ProtectedRoutes = append([]string(nil), defaultProtectedRoutes...)
	}
	if len(srv.AuthOnlyRoutes) == 0 {
		srv.AuthOnlyRoutes = append([]string(nil), defaultAuthOnlyRoutes...)
	}
	if srv.LoginPath == "" {
		srv.LoginPath = "/login"
	}
	if srv.HomePath == "" {
		srv.HomePath = "/dashboard"
	}
	if srv.AuthRateLimit == 0 {
		srv.AuthRateLimit = 10
	}
	if srv.AuthRateBurst == 0 {
		srv.AuthRateBurst = 5
	}

	if cfg.Workers.HashConcurrency <= 0 {
		cfg.Workers.HashConcurrency = runtime.NumCPU()
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. The service refuses to start
// when it fails.
func (cfg *StructuredConfig) validate() error {
	cosmic := cfg.Storage.Cosmic
	if cosmic.BucketSlug == "" || cosmic.ReadKey == "" || cosmic.WriteKey == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}
	if cfg.App.IsProduction() && cfg.App.TokenSignKey == DevelopmentTokenSignKey {
		return ErrMissingTokenSignKey
	}

	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return ErrInvalidAppConfigs
	}
	if cfg.App.TokenDuration < 0 || cfg.App.RefreshTokenDuration < cfg.App.TokenDuration {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.AuthRateLimit < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
