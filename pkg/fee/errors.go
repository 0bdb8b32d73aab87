package fee

import "errors"

var (
	// ErrMissingPersonKind is returned when a cash-out carries no person kind
	ErrMissingPersonKind = errors.New("missing person type for cash out operation")
	// ErrUnsupportedOperation is returned when no rule handles the operation
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
