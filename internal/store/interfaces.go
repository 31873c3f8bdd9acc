// Package store implements persistence of member accounts on top of the
// external content store. It owns the mapping between [models.Account] and
// the store's object shape (metadata field names) and translates store
// errors into this package's sentinel errors.
package store

import (
	"context"

	"github.com/cosmic-community/coffee-closer-network/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_repository_mock.go -package=mock

// AccountRepository reads and writes member accounts.
type AccountRepository interface {
	// FindByID returns the account with the given object id.
	FindByID(ctx context.Context, id string) (models.Account, error)
	// FindBySlug returns the account whose slug equals slug.
	FindBySlug(ctx context.Context, slug string) (models.Account, error)
	// FindByEmail returns the account whose (lower-cased) email equals email.
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	// Create persists a new account and returns it as stored.
	Create(ctx context.Context, account models.Account) (models.Account, error)
	// Update writes the given metadata fields of account id and returns the
	// stored result. Fields absent from fields are left untouched.
	Update(ctx context.Context, id string, fields AccountFields) (models.Account, error)
}
