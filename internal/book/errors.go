package book

import (
	"errors"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Sentinel error kinds surfaced by every book operation.
// Callers branch on them with errors.Is; the wrapping text carries the
// human-readable detail (which field, which constraint).
var (
	// ErrInvalidFormat signals a phone number or date string that fails
	// constructor-time validation.
	ErrInvalidFormat = errors.New(config.ErrInvalidFormat)

	// ErrNotFound signals an operation referencing a phone number or contact
	// name that does not exist on the target record or book.
	ErrNotFound = errors.New(config.ErrNotFound)
)
