package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/cosmic-community/coffee-closer-network/internal/utils"
)

type duplicateChecker struct {
	accounts store.AccountRepository
	logger   *logger.Logger
}

func NewDuplicateChecker(accounts store.AccountRepository, logger *logger.Logger) DuplicateChecker {
	return &duplicateChecker{
		accounts: accounts,
		logger:   logger,
	}
}

// Exists looks identity up by email when it contains "@", by slug otherwise.
// A name that slugifies to nothing cannot collide and yields false.
//
// store.ErrAccountNotFound is the negative answer; every other repository
// error is returned wrapped.
func (d *duplicateChecker) Exists(ctx context.Context, identity string) (bool, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return false, nil
	}

	if strings.Contains(identity, "@") {
		return d.emailExists(ctx, identity)
	}
	return d.slugExists(ctx, identity)
}

// ExistsAny checks the slug of fullName first, then email.
func (d *duplicateChecker) ExistsAny(ctx context.Context, fullName, email string) (bool, error) {
	if strings.TrimSpace(fullName) != "" {
		exists, err := d.slugExists(ctx, fullName)
		if err != nil || exists {
			return exists, err
		}
	}

	if strings.TrimSpace(email) != "" {
		return d.emailExists(ctx, email)
	}

	return false, nil
}

func (d *duplicateChecker) slugExists(ctx context.Context, name string) (bool, error) {
	slug := utils.Slugify(name)
	if slug == "" {
		return false, nil
	}

	_, err := d.accounts.FindBySlug(ctx, slug)
	return found(ctx, "slug", err)
}

func (d *duplicateChecker) emailExists(ctx context.Context, email string) (bool, error) {
	_, err := d.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	return found(ctx, "email", err)
}

func found(ctx context.Context, by string, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrAccountNotFound):
		return false, nil
	default:
		logger.FromContext(ctx).Err(err).Str("by", by).Msg("duplicate lookup failed")
		return false, fmt.Errorf("duplicate lookup by %s failed: %w", by, err)
	}
}
