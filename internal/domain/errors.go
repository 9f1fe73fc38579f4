package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP status codes.
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller is not the owning identity.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict is returned on duplicate registration, wishlist duplicates,
	// and capacity exhaustion.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFilter is returned for an unrecognized filter field or
	// operator, or a numeric filter value that cannot be coerced. It is a
	// subtype of ErrInvalidInput: errors.Is(ErrInvalidFilter, ErrInvalidInput)
	// holds.
	ErrInvalidFilter = fmt.Errorf("%w: invalid filter", ErrInvalidInput)
)
