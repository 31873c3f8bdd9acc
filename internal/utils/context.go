// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, slugs,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/cosmic-community/coffee-closer-network/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key used to store verified session claims in the
// request context. Claims are request-scoped: they are placed in the context
// by the session middleware and never kept in package-level state.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, claims)
var ClaimsCtxKey = contextKey("sessionClaims")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// ClaimsFromContext retrieves the verified session claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true: non-nil claims of the correct type are present
//   - ok == false: value is missing, nil or has an unexpected type
//
// Example usage:
//
//	claims, ok := utils.ClaimsFromContext(ctx)
//	if !ok {
//	    // handle anonymous request
//	}
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*models.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
