package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStorageUnavailable means the persistence layer could not be reached
	// or the transaction failed. Callers must not assume the write happened.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrMalformedInput is returned when the caller supplied an invalid shape.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnauthenticated is returned when no user identity is attached to the request.
	ErrUnauthenticated = errors.New("login required")
	// ErrRateLimited is returned when a user submits faster than allowed.
	ErrRateLimited = errors.New("too many submissions")
)
