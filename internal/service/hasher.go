package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/cosmic-community/coffee-closer-network/internal/validators"
	"github.com/cosmic-community/coffee-closer-network/internal/workers"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the only password hashing strategy of the service.
// Hash and compare calls are CPU-bound and run through a bounded runner.
type bcryptHasher struct {
	cost   int
	runner workers.Runner
}

// NewPasswordHasher returns a bcrypt PasswordHasher. A cost outside bcrypt's
// accepted range falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int, runner workers.Runner) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{
		cost:   cost,
		runner: runner,
	}
}

// Hash returns a salted bcrypt hash of password. Every call uses a fresh salt.
//
// Returns:
//   - ErrInvalidPassword for passwords shorter than 8 characters or longer
//     than 72 bytes.
//   - ErrHashingFailed if bcrypt fails or ctx ends while waiting for a slot.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if utf8.RuneCountInString(password) < validators.MinPasswordLength || len(password) > validators.MaxPasswordBytes {
		return "", ErrInvalidPassword
	}

	var hashed []byte
	err := h.runner.Do(ctx, func() error {
		var err error
		hashed, err = bcrypt.GenerateFromPassword([]byte(password), h.cost)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(hashed), nil
}

func (h *bcryptHasher) Verify(ctx context.Context, password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	err := h.runner.Do(ctx, func() error {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	})
	return err == nil
}
