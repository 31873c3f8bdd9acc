package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every input validation failure. When the
	// failure is field-level, the chain also carries models.ValidationErrors.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidPassword is returned by the hasher for passwords outside the
	// accepted length range.
	ErrInvalidPassword = errors.New("password does not meet length requirements")

	// ErrInvalidCredentials is returned by Login for both an unknown email and
	// a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAccountSuspended = errors.New("account is suspended")

	ErrHashingFailed = errors.New("password hashing failed")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
