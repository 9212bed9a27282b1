package carriers

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/account"
)

// ErrUnsupportedProvider is returned when no adapter constructor is
// registered for an account's provider tag. Accounts can be stored for
// providers whose integration ships later; they fail at resolution time,
// not at storage time.
var ErrUnsupportedProvider = errors.New("unsupported carrier provider")

// AdapterError wraps a failure inside a carrier integration. It carries
// the provider and the operation so callers can log which carrier broke
// without parsing error text. Rate shopping treats adapter errors as
// non-fatal per account; booking treats them as fatal.
type AdapterError struct {
	// Provider is the carrier integration that failed.
	Provider account.Provider
	// Op is the adapter operation, e.g. "get rates" or "book shipment".
	Op string
	// Cause is the underlying error.
	Cause error
}

// NewAdapterError creates an AdapterError for a provider operation.
func NewAdapterError(provider account.Provider, op string, cause error) *AdapterError {
	return &AdapterError{
		Provider: provider,
		Op:       op,
		Cause:    cause,
	}
}

// Error implements the error interface.
func (e *AdapterError) Error() string {
	return fmt.Sprintf("carrier %s: %s failed: %v", e.Provider, e.Op, e.Cause)
}

// Unwrap returns the underlying error.
func (e *AdapterError) Unwrap() error {
	return e.Cause
}
