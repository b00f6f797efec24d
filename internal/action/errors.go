package action

import "errors"

// Domain-specific errors for the action package.
var (
	ErrUnknownProvider = errors.New("unknown extraction provider")
	ErrUnknownFormat   = errors.New("unknown export format")
)
