// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cosmic-community/coffee-closer-network/internal/adapter"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/models"
)

// accountRepository is the content-store-backed implementation of
// [AccountRepository]. Accounts are objects of a single object type; their
// fields live in the object's metadata.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type accountRepository struct {
	store      adapter.ContentStore
	objectType string
	logger     *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] that keeps accounts
// as objects of objectType in contentStore.
func NewAccountRepository(contentStore adapter.ContentStore, objectType string, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("object_type", objectType).Msg("creating account repository")
	return &accountRepository{
		store:      contentStore,
		objectType: objectType,
		logger:     logger,
	}
}

// FindByID fetches the object by id. Objects of another type are reported as
// [ErrAccountNotFound].
func (r *accountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	obj, err := r.store.GetObject(ctx, id)
	if err != nil {
		return models.Account{}, r.mapError(ctx, "FindByID", err)
	}
	if obj.Type != "" && obj.Type != r.objectType {
		return models.Account{}, ErrAccountNotFound
	}

	return toAccount(obj)
}

// FindBySlug looks the account up by its object slug.
func (r *accountRepository) FindBySlug(ctx context.Context, slug string) (models.Account, error) {
	if slug == "" {
		return models.Account{}, ErrAccountNotFound
	}

	obj, err := r.store.FindObject(ctx, adapter.Query{"type": r.objectType, "slug": slug})
	if err != nil {
		return models.Account{}, r.mapError(ctx, "FindBySlug", err)
	}

	return toAccount(obj)
}

// FindByEmail looks the account up by its email metadata field. The email is
// compared in lower case.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	email = normalizeEmail(email)
	if email == "" {
		return models.Account{}, ErrAccountNotFound
	}

	obj, err := r.store.FindObject(ctx, adapter.Query{"type": r.objectType, "metadata." + fieldEmail: email})
	if err != nil {
		return models.Account{}, r.mapError(ctx, "FindByEmail", err)
	}

	return toAccount(obj)
}

// Create inserts account as a new object titled with the full name.
//
// Error handling:
//   - store 409 → [ErrAccountAlreadyExists]; this is the authoritative
//     uniqueness signal, duplicate pre-checks are only a fast path.
//   - store 401/403 → [ErrStoreForbidden].
//   - anything else → [ErrUpstream].
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	account.Email = normalizeEmail(account.Email)

	obj, err := r.store.InsertObject(ctx, adapter.ObjectInput{
		Title:    account.FullName,
		Type:     r.objectType,
		Slug:     account.Slug,
		Status:   "published",
		Metadata: accountMetadata(account),
	})
	if err != nil {
		return models.Account{}, r.mapError(ctx, "Create", err)
	}

	created, err := toAccount(obj)
	if err != nil {
		return models.Account{}, err
	}
	// write responses may omit metadata; fall back to what was sent
	if created.Email == "" {
		id, createdAt, modifiedAt := created.ID, created.CreatedAt, created.ModifiedAt
		created = account
		created.ID, created.CreatedAt, created.ModifiedAt = id, createdAt, modifiedAt
	}

	logger.FromContext(ctx).Info().Str("account_id", created.ID).Msg("account created")
	return created, nil
}

// Update writes the non-nil fields of fields to the account's metadata.
// Concurrent updates of the same account are last-writer-wins.
func (r *accountRepository) Update(ctx context.Context, id string, fields AccountFields) (models.Account, error) {
	if fields.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	input := adapter.ObjectInput{Metadata: fields.metadata()}
	if fields.FullName != nil {
		input.Title = *fields.FullName
	}

	obj, err := r.store.UpdateObject(ctx, id, input)
	if err != nil {
		return models.Account{}, r.mapError(ctx, "Update", err)
	}

	updated, err := toAccount(obj)
	if err != nil {
		return models.Account{}, err
	}
	if updated.ID == "" {
		// the store answered without the object; read it back
		return r.FindByID(ctx, id)
	}

	return updated, nil
}

func (r *accountRepository) mapError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return ErrAccountNotFound
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrAccountAlreadyExists, err)
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository."+op).Msg("content store refused credentials")
		return fmt.Errorf("%w: %w", ErrStoreForbidden, err)
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository."+op).Msg("content store error")
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
