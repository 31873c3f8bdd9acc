package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes the short-lived session token from the
// longer-lived token issued by the refresh path.
type TokenKind string

const (
	SessionToken TokenKind = "session"
	RefreshToken TokenKind = "refresh"
)

// Claims is the claim set carried inside a signed session token.
// It has no server-side persisted counterpart.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the account the token was issued for.
	Email string `json:"email"`

	// FullName is the display name at issuance time.
	FullName string `json:"name"`

	// IsAdmin grants access to admin-only routes.
	IsAdmin bool `json:"is_admin"`

	// Kind records which lifetime the token was issued with. Tokens
	// without it are session tokens.
	Kind TokenKind `json:"kind,omitempty"`
}

// UserID returns the account identifier held in the "sub" claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// Session is the client-facing view of verified claims.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	IsAdmin   bool      `json:"isAdmin"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Session converts the claims to their client-facing view.
func (c *Claims) Session() Session {
	s := Session{
		ID:       c.Subject,
		Email:    c.Email,
		FullName: c.FullName,
		IsAdmin:  c.IsAdmin,
	}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

// Token wraps a signed session token with the claims it was built from.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be placed in the session cookie.
type Token struct {
	// Claims holds the verified (or freshly issued) claim set.
	Claims *Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Kind mirrors Claims.Kind.
	Kind TokenKind `json:"-"`

	// ExpiresAt is the absolute expiry of the token.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// MaxAge returns the remaining lifetime of the token in whole seconds,
// suitable for a cookie Max-Age attribute.
func (t *Token) MaxAge(now time.Time) int {
	left := t.ExpiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(left.Round(time.Second) / time.Second)
}
