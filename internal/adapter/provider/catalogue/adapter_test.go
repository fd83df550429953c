package catalogue

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

func newAdapter() *Adapter {
	return New(zerolog.Nop())
}

func params(destination string) domain.SearchParams {
	return domain.SearchParams{
		Destination: destination,
		CheckIn:     "2026-10-01",
		CheckOut:    "2026-10-03",
		Guests:      2,
	}
}

func TestAdapter_AlwaysAvailable(t *testing.T) {
	a := newAdapter()
	assert.Equal(t, "catalogue", a.Name())
	assert.True(t, a.Available())
}

func TestSearch_CuratedDestination(t *testing.T) {
	a := newAdapter()

	got, err := a.Search(context.Background(), params("Manali"))

	require.NoError(t, err)
	require.Len(t, got, 4)

	names := make([]string, 0, len(got))
	for _, o := range got {
		names = append(names, o.Name)
	}
	assert.Contains(t, names, "Zostel Manali")
	assert.Contains(t, names, "Span Resort & Spa")

	for _, o := range got {
		assert.Equal(t, "catalogue", o.Provider)
		assert.True(t, strings.HasPrefix(o.ID, "catalogue-"))
		assert.True(t, strings.HasSuffix(o.Address, ", Manali"))
		require.NotNil(t, o.PricePerNightINR)
		assert.True(t, o.TierMatchesPrice())
	}
}

func TestSearch_DestinationKeyNormalized(t *testing.T) {
	a := newAdapter()

	upper, err := a.Search(context.Background(), params("  MANALI "))
	require.NoError(t, err)

	lower, err := a.Search(context.Background(), params("manali"))
	require.NoError(t, err)

	require.Len(t, upper, len(lower))
	for i := range upper {
		assert.Equal(t, lower[i].Name, upper[i].Name)
	}
}

func TestSearch_UnknownDestinationGetsGenericOptions(t *testing.T) {
	a := newAdapter()

	got, err := a.Search(context.Background(), params("Unknown Village"))

	require.NoError(t, err)
	require.Len(t, got, 4)

	categories := map[domain.LodgingCategory]int{}
	for _, o := range got {
		categories[o.Category]++
		assert.True(t, strings.HasSuffix(o.Address, ", Unknown Village"))
	}
	assert.Equal(t, 1, categories[domain.CategoryHostel])
	assert.Equal(t, 1, categories[domain.CategoryGuesthouse])
	assert.Equal(t, 2, categories[domain.CategoryHotel])
}

// TestSearch_NoFilteringApplied verifies the adapter returns the full curated
// set regardless of budget or category constraints; filtering is the
// coordinator's job.
func TestSearch_NoFilteringApplied(t *testing.T) {
	a := newAdapter()

	budget := 700
	p := params("Rishikesh")
	p.MaxNightlyPriceINR = &budget
	p.PreferredCategories = []domain.LodgingCategory{domain.CategoryHostel}

	got, err := a.Search(context.Background(), p)

	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestSearch_ContentStableAcrossCalls(t *testing.T) {
	a := newAdapter()

	first, err := a.Search(context.Background(), params("Kasol"))
	require.NoError(t, err)
	second, err := a.Search(context.Background(), params("Kasol"))
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, *first[i].PricePerNightINR, *second[i].PricePerNightINR)
		// IDs are minted per call.
		assert.NotEqual(t, first[i].ID, second[i].ID)
	}
}

func TestCatalogue_PriceTiersConsistent(t *testing.T) {
	for destination, entries := range destinationCatalogue {
		for _, e := range entries {
			opt := buildOption(e, destination)
			assert.True(t, opt.TierMatchesPrice(), "%s / %s", destination, e.Name)
		}
	}
}
