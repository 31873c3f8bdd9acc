// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoSession is returned when a request needs a session but carries no
	// valid session cookie or bearer token.
	ErrNoSession = errors.New("no valid session")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrTooManyRequests is returned when a client exceeds the auth rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)
