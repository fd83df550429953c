// Package mock provides test doubles for the accommodation search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, panics, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// Provider is a configurable mock implementation of
// domain.AccommodationProvider. It supports configurable delays, errors,
// panics, and per-destination responses for testing chain fall-through and
// concurrent dispatch scenarios.
type Provider struct {
	name      string
	available bool
	options   []domain.AccommodationOption
	byDest    map[string][]domain.AccommodationOption
	err       error
	panicMsg  string
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewProvider creates a new available mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:      name,
		available: true,
	}
}

// WithOptions configures the provider to return the given options for every
// destination.
func (p *Provider) WithOptions(options []domain.AccommodationOption) *Provider {
	p.options = options
	return p
}

// WithOptionsFor configures the provider to return the given options only
// for the named destination. Destinations without an entry get the default
// options set by WithOptions, or none.
func (p *Provider) WithOptionsFor(destination string, options []domain.AccommodationOption) *Provider {
	if p.byDest == nil {
		p.byDest = make(map[string][]domain.AccommodationOption)
	}
	p.byDest[destination] = options
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithPanic configures the provider to panic with the given message.
func (p *Provider) WithPanic(msg string) *Provider {
	p.panicMsg = msg
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Unavailable marks the provider as not configured; the chain skips it.
func (p *Provider) Unavailable() *Provider {
	p.available = false
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Available implements domain.AccommodationProvider.Available.
func (p *Provider) Available() bool {
	return p.available
}

// Search implements domain.AccommodationProvider.Search.
// It respects context cancellation, applies configured delay, and returns
// configured options, error, or panic.
func (p *Provider) Search(ctx context.Context, params domain.SearchParams) ([]domain.AccommodationOption, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.panicMsg != "" {
		panic(p.panicMsg)
	}

	if p.err != nil {
		return nil, p.err
	}

	if opts, ok := p.byDest[params.Destination]; ok {
		return opts, nil
	}
	return p.options, nil
}

// CallCount returns the number of times Search was called.
// This is useful for verifying which providers the chain reached.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.AccommodationProvider at compile time.
var _ domain.AccommodationProvider = (*Provider)(nil)

// SampleOptions returns a slice of sample accommodation options for testing.
// The options have all required fields populated with realistic values and
// ascending nightly prices starting at 800 INR.
func SampleOptions(provider, destination string, count int) []domain.AccommodationOption {
	options := make([]domain.AccommodationOption, count)

	categories := []domain.LodgingCategory{
		domain.CategoryHostel,
		domain.CategoryGuesthouse,
		domain.CategoryHotel,
		domain.CategoryResort,
	}

	for i := 0; i < count; i++ {
		price := 800 + i*1200
		rating := 3.5 + float64(i%3)*0.5

		options[i] = domain.AccommodationOption{
			ID:               fmt.Sprintf("%s-%d", provider, i+1),
			Name:             fmt.Sprintf("%s Stay %d", destination, i+1),
			Category:         categories[i%len(categories)],
			Provider:         provider,
			Address:          fmt.Sprintf("Main Road, %s", destination),
			PriceTier:        domain.PriceTierFromINR(&price),
			PricePerNightINR: &price,
			Rating:           &rating,
			ReviewCount:      50 + i*25,
		}
	}

	return options
}
