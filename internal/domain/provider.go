package domain

import "context"

// AccommodationProvider is the interface implemented by every accommodation
// data source, external or synthetic.
//
// Implementations are expected to be safe for concurrent use: the chain is a
// shared, long-lived resource read by every in-flight search, and no adapter
// instance is owned by a single request.
type AccommodationProvider interface {
	// Name returns the stable provider identifier used for tagging
	// results and logging (e.g. "amadeus").
	Name() string

	// Available reports whether the provider can be attempted at all,
	// typically whether its required credentials are configured.
	// It must not perform I/O.
	Available() bool

	// Search returns normalized options for the given parameters.
	// Implementations must convert internal failures (network errors,
	// malformed payloads, auth failures, timeouts) into an empty result
	// with a nil error; a returned error is treated by the chain the same
	// as an empty result.
	Search(ctx context.Context, params SearchParams) ([]AccommodationOption, error)
}

// Chain is the fixed-priority, ordered sequence of providers tried per
// search. It is constructed once at startup and never mutated per-request.
// Adding, removing, or reordering providers means touching only the
// construction site, nothing else.
//
// By convention the last provider is a guaranteed-available source that
// returns a non-empty result for any input, so a correctly built chain never
// yields an empty search.
type Chain struct {
	providers []AccommodationProvider
}

// NewChain creates a Chain with the given providers in priority order.
func NewChain(providers ...AccommodationProvider) *Chain {
	return &Chain{providers: providers}
}

// Providers returns the providers in priority order. The returned slice is
// shared and must be treated as read-only.
func (c *Chain) Providers() []AccommodationProvider {
	return c.providers
}

// Len returns the number of providers in the chain.
func (c *Chain) Len() int {
	return len(c.providers)
}

// Get returns the provider with the given name, if present.
func (c *Chain) Get(name string) (AccommodationProvider, bool) {
	for _, p := range c.providers {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Terminal returns the last provider in the chain, the designated
// guaranteed fallback. Returns nil for an empty chain.
func (c *Chain) Terminal() AccommodationProvider {
	if len(c.providers) == 0 {
		return nil
	}
	return c.providers[len(c.providers)-1]
}
