package exchange

import "errors"

// Common errors for exchange operations
var (
	// ErrInvalidRate indicates that an invalid exchange rate was provided
	ErrInvalidRate = errors.New("invalid exchange rate")

	// ErrNoRateAvailable indicates that neither a direct nor an inverse rate
	// is registered for the requested pair.
	ErrNoRateAvailable = errors.New("no exchange rate available")
)
