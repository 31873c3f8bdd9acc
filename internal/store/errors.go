package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when a lookup by id, slug or email
	// matches no account. For duplicate checks this is the expected negative
	// outcome, not a failure.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrAccountAlreadyExists is returned when the content store rejects a
	// write because an account with the same slug or email already exists.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrStoreForbidden is returned when the content store refuses the
	// configured credentials (HTTP 401/403).
	ErrStoreForbidden = errors.New("content store refused credentials")

	// ErrUpstream is returned for every other content store failure.
	ErrUpstream = errors.New("content store failure")

	// ErrDecodingAccount is returned when a stored object cannot be mapped
	// onto an account.
	ErrDecodingAccount = errors.New("failed to decode account object")
)
