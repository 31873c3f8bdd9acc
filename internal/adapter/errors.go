package adapter

import "errors"

// Errors returned by [ContentStore] implementations. Each maps to one HTTP
// status of the store API; see mapHTTPError.
var (
	ErrBadRequest          = errors.New("content store: bad request")
	ErrUnauthorized        = errors.New("content store: unauthorized")
	ErrForbidden           = errors.New("content store: forbidden")
	ErrNotFound            = errors.New("content store: not found")
	ErrConflict            = errors.New("content store: conflict")
	ErrInternalServerError = errors.New("content store: internal server error")
	ErrBadGateway          = errors.New("content store: bad gateway")
	ErrUnexpectedStatus    = errors.New("content store: unexpected status")
	ErrUnavailable         = errors.New("content store: unavailable")
)
