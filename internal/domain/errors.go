package domain

import "errors"

// Domain sentinel errors. Use errors.Is to check for them after wrapping.
var (
	// ErrInvalidRequest indicates the search parameters failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoProvidersConfigured indicates the provider chain is empty.
	// A correctly constructed chain always ends with the guaranteed
	// fallback, so hitting this is a wiring bug, not a runtime condition.
	ErrNoProvidersConfigured = errors.New("no accommodation providers configured")
)
