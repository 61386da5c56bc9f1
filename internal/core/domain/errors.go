package domain

import "errors"

// Failure taxonomy for gateway and store operations. Controllers map these
// to user-facing messages at the boundary; none of them is fatal to the
// process.
var (
	// ErrUnauthorized means the backend rejected the credentials.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrConflict means the registration identity already exists.
	ErrConflict = errors.New("user already exists")

	// ErrValidation means the backend rejected one or more fields.
	ErrValidation = errors.New("invalid registration data")

	// ErrNetwork means the backend produced no response at all.
	ErrNetwork = errors.New("service unreachable")

	// ErrUnknown covers every failure the gateway cannot classify.
	ErrUnknown = errors.New("unexpected error")

	// ErrRecordNotFound is returned by session record stores when no
	// persisted record exists. It is an expected condition, not a fault.
	ErrRecordNotFound = errors.New("session record not found")

	// ErrSubmitInFlight rejects a second submission on a controller whose
	// previous one has not settled yet.
	ErrSubmitInFlight = errors.New("submission already in progress")
)
