package registry

import "errors"

var (
	// ErrNilValidator is returned when registering a nil validator
	ErrNilValidator = errors.New("validator cannot be nil")

	// ErrAlreadyRegistered is returned when an entity type already has a validator
	ErrAlreadyRegistered = errors.New("validator already registered for entity type")

	// ErrNotRegistered is returned when no validator is registered for an entity type
	ErrNotRegistered = errors.New("no validator registered for entity type")
)
