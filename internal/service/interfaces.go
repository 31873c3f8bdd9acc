// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic of the member backend:
// signup and login, session token issuance, duplicate checks and profile
// writes. Services talk to persistence only through store repositories and
// never see HTTP types.
package service

import (
	"context"

	"github.com/cosmic-community/coffee-closer-network/models"
)

// AuthService handles account registration, credential checks and the
// session token lifecycle.
type AuthService interface {
	// Signup validates the request, rejects duplicates, hashes the password
	// and persists a new account.
	Signup(ctx context.Context, req models.SignupRequest) (models.Account, error)

	// Login returns the account matching the credentials.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)

	// CreateToken issues a signed token of the given kind for account.
	CreateToken(ctx context.Context, account models.Account, kind models.TokenKind) (models.Token, error)

	// ParseToken verifies tokenString. Every failure is reported as
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Refresh reissues a currently valid token with the refresh lifetime.
	Refresh(ctx context.Context, tokenString string) (models.Token, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches hash. Any failure yields false.
	Verify(ctx context.Context, password, hash string) bool
}

// DuplicateChecker looks up existing accounts by slug or email.
type DuplicateChecker interface {
	// Exists treats identity as an email when it contains "@" and as a
	// full name or slug otherwise.
	Exists(ctx context.Context, identity string) (bool, error)

	// ExistsAny reports whether the slug of fullName or the email is taken.
	// Empty arguments are skipped.
	ExistsAny(ctx context.Context, fullName, email string) (bool, error)
}

// ProfileService writes and reads member profiles.
type ProfileService interface {
	CreateProfile(ctx context.Context, input models.AccountInput) (models.Account, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Account, error)
	SetupProfile(ctx context.Context, id string, setup models.ProfileSetup) (models.Account, error)
	GetProfile(ctx context.Context, id string) (models.Account, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
