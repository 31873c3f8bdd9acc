package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cosmic-community/coffee-closer-network/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT token for claims.
//
// The registered claims of the given claim set are overwritten:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// claims.Subject (the account id) is required, as are the remaining
// parameters. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken(claims, "my-service", 24*time.Hour, "secret")
func GenerateSessionToken(claims *models.Claims, issuer string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if claims == nil || claims.Subject == "" || issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	issued := *claims
	issued.Issuer = issuer
	issued.IssuedAt = jwt.NewNumericDate(now)
	issued.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &issued)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Claims:       &issued,
		SignedString: tokenString,
		ExpiresAt:    issued.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseSessionToken validates the given JWT token string and
// extracts its claims.
//
// Validation includes:
//   - Signing method check (HS256 only)
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseSessionToken(rawToken, "secret", "my-service")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		Claims:       claims,
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
