// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the external headless content
// store that holds every durable record of the service.
//
// The primary abstraction is [ContentStore], which decouples the store layer
// from the store's REST protocol. The package ships a resty-based
// implementation of the Cosmic v3 API ([NewCosmicStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/content_store_mock.go -package=mock

// ContentStore defines object-level access to the external content store.
// Implementations are responsible for serialisation, credentials, and mapping
// transport-level errors to the sentinel values defined in this package.
type ContentStore interface {
	// FindObject returns the first object matching query. A query that
	// matches nothing yields [ErrNotFound].
	FindObject(ctx context.Context, query Query) (Object, error)

	// GetObject fetches the object with the given id. Returns [ErrNotFound]
	// (wrapped) when no such object exists.
	GetObject(ctx context.Context, id string) (Object, error)

	// InsertObject creates a new object and returns it as stored.
	InsertObject(ctx context.Context, input ObjectInput) (Object, error)

	// UpdateObject applies input to the object with the given id. Metadata
	// keys present in input replace stored ones; other keys are kept.
	UpdateObject(ctx context.Context, id string, input ObjectInput) (Object, error)
}
