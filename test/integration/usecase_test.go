package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/accommodation-aggregation-system/internal/adapter/provider/catalogue"
	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
	"github.com/trip-planner/accommodation-aggregation-system/internal/usecase"
	"github.com/trip-planner/accommodation-aggregation-system/test/mock"
	"github.com/trip-planner/accommodation-aggregation-system/test/testutil"
)

// TestSearch_FirstProviderWins verifies that a non-empty result from the
// highest-priority provider stops the chain walk.
func TestSearch_FirstProviderWins(t *testing.T) {
	primary := mock.NewProvider("primary").
		WithOptions(mock.SampleOptions("primary", "Manali", 3))
	secondary := mock.NewProvider("secondary").
		WithOptions(mock.SampleOptions("secondary", "Manali", 2))

	uc := CreateUseCase(primary, secondary)

	options, err := uc.Search(context.Background(), DefaultSearchParams())

	require.NoError(t, err)
	require.Len(t, options, 3)
	for _, o := range options {
		assert.Equal(t, "primary", o.Provider)
	}
	assert.Equal(t, 1, primary.CallCount())
	assert.Equal(t, 0, secondary.CallCount(), "chain should stop at the first non-empty result")
}

// TestSearch_ErrorFallsThrough verifies that a provider error does not abort
// the search; the next provider in the chain answers instead.
func TestSearch_ErrorFallsThrough(t *testing.T) {
	broken := mock.NewProvider("broken").WithError(errors.New("connection refused"))
	fallback := mock.NewProvider("fallback").
		WithOptions(mock.SampleOptions("fallback", "Manali", 2))

	uc := CreateUseCase(broken, fallback)

	options, err := uc.Search(context.Background(), DefaultSearchParams())

	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "fallback", options[0].Provider)
	assert.Equal(t, 1, broken.CallCount())
}

// TestSearch_PanicFallsThrough verifies that a panicking provider is
// contained and the chain continues.
func TestSearch_PanicFallsThrough(t *testing.T) {
	panicking := mock.NewProvider("panicking").WithPanic("nil map write")
	fallback := mock.NewProvider("fallback").
		WithOptions(mock.SampleOptions("fallback", "Manali", 1))

	uc := CreateUseCase(panicking, fallback)

	options, err := uc.Search(context.Background(), DefaultSearchParams())

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "fallback", options[0].Provider)
}

// TestSearch_UnavailableProviderSkipped verifies that unavailable providers
// are never called.
func TestSearch_UnavailableProviderSkipped(t *testing.T) {
	unconfigured := mock.NewProvider("unconfigured").Unavailable().
		WithOptions(mock.SampleOptions("unconfigured", "Manali", 5))
	active := mock.NewProvider("active").
		WithOptions(mock.SampleOptions("active", "Manali", 2))

	uc := CreateUseCase(unconfigured, active)

	options, err := uc.Search(context.Background(), DefaultSearchParams())

	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, 0, unconfigured.CallCount())
}

// TestSearch_EmptyChain verifies the wiring-bug sentinel for an empty chain.
func TestSearch_EmptyChain(t *testing.T) {
	uc := CreateUseCase()

	options, err := uc.Search(context.Background(), DefaultSearchParams())

	assert.ErrorIs(t, err, domain.ErrNoProvidersConfigured)
	assert.Nil(t, options)
}

// TestSearch_BudgetFilterOnWinningSet verifies the budget cap is applied to
// the winning provider's options, dropping priced options above the cap.
func TestSearch_BudgetFilterOnWinningSet(t *testing.T) {
	// Sample prices are 800, 2000, 3200 INR per night
	provider := mock.NewProvider("primary").
		WithOptions(mock.SampleOptions("primary", "Manali", 3))

	uc := CreateUseCase(provider)

	params := DefaultSearchParams()
	params.MaxNightlyPriceINR = testutil.IntPtr(2000)

	options, err := uc.Search(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, options, 2)
	for _, o := range options {
		require.NotNil(t, o.PricePerNightINR)
		assert.LessOrEqual(t, *o.PricePerNightINR, 2000)
	}
}

// TestSearch_CategoryPreferenceIsSoft verifies that an unmatched category
// preference leaves the result set untouched.
func TestSearch_CategoryPreferenceIsSoft(t *testing.T) {
	provider := mock.NewProvider("primary").
		WithOptions(mock.SampleOptions("primary", "Manali", 2))

	uc := CreateUseCase(provider)

	params := DefaultSearchParams()
	params.PreferredCategories = testutil.Categories(t, "villa")

	options, err := uc.Search(context.Background(), params)

	require.NoError(t, err)
	assert.Len(t, options, 2, "unmatched preference should not empty the set")
}

// TestSearch_CatalogueTerminalFallback runs the real catalogue adapter at
// the end of the chain: any destination resolves to a non-empty set even
// when live providers fail.
func TestSearch_CatalogueTerminalFallback(t *testing.T) {
	broken := mock.NewProvider("broken").WithError(errors.New("upstream down"))
	terminal := catalogue.New(zerolog.Nop())

	uc := CreateUseCase(broken, terminal)

	t.Run("curated destination", func(t *testing.T) {
		options, err := uc.Search(context.Background(), DefaultSearchParams())

		require.NoError(t, err)
		require.NotEmpty(t, options)
		assert.Equal(t, "catalogue", options[0].Provider)
	})

	t.Run("unknown destination with budget", func(t *testing.T) {
		params := DefaultSearchParams()
		params.Destination = "Unknown Village"
		params.MaxNightlyPriceINR = testutil.IntPtr(2000)

		options, err := uc.Search(context.Background(), params)

		require.NoError(t, err)
		require.NotEmpty(t, options, "terminal provider must answer any destination")
		for _, o := range options {
			require.NotNil(t, o.PricePerNightINR)
			assert.LessOrEqual(t, *o.PricePerNightINR, 2000)
		}
	})
}

// TestSearch_CacheServesRepeatQueries verifies that an identical repeat
// query within the TTL is served without touching the chain again.
func TestSearch_CacheServesRepeatQueries(t *testing.T) {
	provider := mock.NewProvider("primary").
		WithOptions(mock.SampleOptions("primary", "Manali", 2))

	uc := CreateUseCaseWithConfig(&usecase.Config{CacheTTL: time.Minute}, provider)

	_, err := uc.Search(context.Background(), DefaultSearchParams())
	require.NoError(t, err)

	options, err := uc.Search(context.Background(), DefaultSearchParams())
	require.NoError(t, err)

	assert.Len(t, options, 2)
	assert.Equal(t, 1, provider.CallCount(), "second query should hit the cache")
}

// TestEnrichPlan_EndToEnd verifies the full enrichment flow: distinct
// overnight locations queried once each, options attached per day.
func TestEnrichPlan_EndToEnd(t *testing.T) {
	provider := mock.NewProvider("primary").
		WithOptionsFor("Manali", mock.SampleOptions("primary", "Manali", 2)).
		WithOptionsFor("Kasol", mock.SampleOptions("primary", "Kasol", 1))

	uc := CreateUseCase(provider)

	days := []domain.PlanDay{
		{DayNumber: 1, Date: "2026-10-01", OvernightLocation: "Manali"},
		{DayNumber: 2, Date: "2026-10-02", OvernightLocation: "Kasol"},
		{DayNumber: 3, Date: "2026-10-03", OvernightLocation: "Manali"},
		{DayNumber: 4, Date: "2026-10-04"},
	}

	enriched, err := uc.EnrichPlan(context.Background(), days, DefaultStayParams())

	require.NoError(t, err)
	require.Len(t, enriched, 4)
	assert.Len(t, enriched[0].Options, 2)
	assert.Len(t, enriched[1].Options, 1)
	assert.Len(t, enriched[2].Options, 2)
	assert.Nil(t, enriched[3].Options, "day without overnight location stays untouched")

	// Manali and Kasol each resolved exactly once
	assert.Equal(t, 2, provider.CallCount())
}

// TestSearchLocations_FailureIsolation verifies that one failing location
// does not affect the others in a multi-location dispatch.
func TestSearchLocations_FailureIsolation(t *testing.T) {
	provider := mock.NewProvider("primary").
		WithOptionsFor("Manali", mock.SampleOptions("primary", "Manali", 2))

	uc := CreateUseCase(provider)

	results, err := uc.SearchLocations(context.Background(),
		[]string{"Manali", "Nowhere"}, DefaultStayParams())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Len(t, results["Manali"], 2)
	assert.NotNil(t, results["Nowhere"])
	assert.Empty(t, results["Nowhere"], "failed location recorded as empty, not missing")
}
