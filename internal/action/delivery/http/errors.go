package http

import (
	"errors"

	"meeting-action-extractor/internal/action"
)

// isClientError reports whether a use case error is the caller's fault.
func isClientError(err error) bool {
	return errors.Is(err, action.ErrUnknownProvider) ||
		errors.Is(err, action.ErrUnknownFormat)
}
