package usecase

import "errors"

var (
	// ErrNotFound covers missing rows and upstream 404s.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned for duplicate wishlist inserts; the
	// store enforces uniqueness on (user_id, external_id).
	ErrAlreadyExists = errors.New("already exists")

	// ErrAuthRequired is returned when a mutation is attempted without an
	// authenticated session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrUpstream marks a non-2xx or transport failure from a required
	// external call. Optional calls swallow it into an absent marker.
	ErrUpstream = errors.New("upstream request failed")

	// ErrMissingConfig is wrapped with the name of the environment
	// variable whose absence made the page impossible to load.
	ErrMissingConfig = errors.New("missing configuration")
)
