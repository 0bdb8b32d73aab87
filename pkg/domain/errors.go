package domain

import "errors"

// Validation errors raised for input records. Each one is fatal for the
// batch that produced it.
var (
	// ErrInvalidOperationKind is returned for an operation outside the whitelist
	ErrInvalidOperationKind = errors.New("unsupported operation type")
	// ErrInvalidPersonKind is returned for a person type outside the whitelist
	ErrInvalidPersonKind = errors.New("unsupported person type")
	// ErrInvalidCurrencyCode is returned for a currency outside the whitelist
	ErrInvalidCurrencyCode = errors.New("unsupported currency")
)
