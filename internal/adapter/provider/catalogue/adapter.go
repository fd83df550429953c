// Package catalogue implements the always-available terminal provider of the
// chain. It serves curated lodging data for popular Indian destinations and a
// generic option set for everything else, so a search is never left empty.
//
// Used when running locally without API credentials, in CI, and as the final
// fallback behind the live providers.
package catalogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

const providerName = "catalogue"

// Adapter serves lodging options from the in-memory catalogue. It needs no
// credentials and never fails.
type Adapter struct {
	log zerolog.Logger
}

// New creates a catalogue Adapter.
func New(log zerolog.Logger) *Adapter {
	return &Adapter{log: log}
}

// Name implements domain.AccommodationProvider.
func (a *Adapter) Name() string {
	return providerName
}

// Available implements domain.AccommodationProvider. The catalogue has no
// external dependencies, so it is always available.
func (a *Adapter) Available() bool {
	return true
}

// Search implements domain.AccommodationProvider. It returns the curated
// entries for the destination when the catalogue knows it, and the generic
// option set otherwise. Budget and category constraints are left to the
// caller.
func (a *Adapter) Search(_ context.Context, params domain.SearchParams) ([]domain.AccommodationOption, error) {
	key := params.DestinationKey()

	entries, known := destinationCatalogue[key]
	if !known {
		entries = genericEntries
	}

	a.log.Debug().
		Str("destination", params.Destination).
		Bool("curated", known).
		Int("entries", len(entries)).
		Msg("Serving catalogue options")

	options := make([]domain.AccommodationOption, 0, len(entries))
	for _, e := range entries {
		options = append(options, buildOption(e, params.Destination))
	}
	return options, nil
}

// buildOption converts one catalogue entry into a domain option. Each call
// mints a fresh ID so repeated searches never alias each other.
func buildOption(e entry, destination string) domain.AccommodationOption {
	price := e.PriceINR
	opt := domain.AccommodationOption{
		ID:               fmt.Sprintf("%s-%s", providerName, uuid.NewString()[:8]),
		Name:             e.Name,
		Category:         e.Category,
		Provider:         providerName,
		Address:          e.Address,
		PricePerNightINR: &price,
		PriceTier:        domain.PriceTierFromINR(&price),
		ReviewCount:      e.ReviewCount,
		Amenities:        append([]string(nil), e.Amenities...),
		BookingURL:       e.BookingURL,
	}
	if dest := strings.TrimSpace(destination); dest != "" {
		opt.Address = e.Address + ", " + dest
	}
	if e.Rating > 0 {
		rating := e.Rating
		opt.Rating = &rating
	}
	return opt
}

var _ domain.AccommodationProvider = (*Adapter)(nil)
