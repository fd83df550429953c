package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
	"github.com/trip-planner/accommodation-aggregation-system/internal/obs"
)

// AccommodationUseCase defines the operations of the accommodation
// resolution core.
type AccommodationUseCase interface {
	// Search resolves lodging options for a single destination by walking
	// the provider chain in priority order and returning the first
	// non-empty result, post-filtered by budget and category preference.
	Search(ctx context.Context, params domain.SearchParams) ([]domain.AccommodationOption, error)

	// SearchLocations resolves options for every distinct destination
	// concurrently and returns a complete location-to-options mapping.
	// Per-location failures are recorded as empty lists, never propagated.
	SearchLocations(ctx context.Context, locations []string, stay domain.StayParams) (map[string][]domain.AccommodationOption, error)

	// EnrichPlan attaches live options to each plan day based on its
	// overnight location, querying each distinct location at most once.
	EnrichPlan(ctx context.Context, days []domain.PlanDay, stay domain.StayParams) ([]domain.PlanDay, error)
}

// accommodationUseCase implements AccommodationUseCase over a fixed
// provider chain.
type accommodationUseCase struct {
	chain   *domain.Chain
	log     zerolog.Logger
	metrics *obs.Metrics
	cache   *resultCache
}

// New creates an AccommodationUseCase with the given chain and
// configuration. If config is nil, defaults are used.
func New(chain *domain.Chain, config *Config) AccommodationUseCase {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
		if cfg.CacheTTL == 0 {
			cfg.CacheTTL = DefaultCacheTTL
		}
	}

	uc := &accommodationUseCase{
		chain:   chain,
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
	if cfg.CacheTTL > 0 {
		uc.cache = newResultCache(cfg.CacheTTL)
	}
	return uc
}

// Search implements AccommodationUseCase.Search.
func (uc *accommodationUseCase) Search(ctx context.Context, params domain.SearchParams) ([]domain.AccommodationOption, error) {
	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if uc.chain.Len() == 0 {
		return nil, domain.ErrNoProvidersConfigured
	}

	uc.metrics.IncSearches()

	if uc.cache == nil {
		return uc.searchChain(ctx, params), nil
	}

	key := cacheKey(params)
	return uc.cache.GetOrCompute(ctx, key, func(ctx context.Context) []domain.AccommodationOption {
		return uc.searchChain(ctx, params)
	}, uc.metrics)
}

// searchChain walks the provider chain in priority order. The first provider
// to return a non-empty result wins; lower-priority providers are never
// attempted after that. Unavailable providers are skipped, and any error or
// panic from a provider is treated as an empty result so the traversal falls
// through to the next entry.
func (uc *accommodationUseCase) searchChain(ctx context.Context, params domain.SearchParams) []domain.AccommodationOption {
	providers := uc.chain.Providers()
	for i, provider := range providers {
		if !provider.Available() {
			uc.log.Debug().
				Str("provider", provider.Name()).
				Msg("Skipping unavailable provider")
			continue
		}

		options, err := uc.tryProvider(ctx, provider, params)
		if err != nil {
			uc.metrics.IncProviderFailure(provider.Name())
			uc.log.Warn().
				Err(err).
				Str("provider", provider.Name()).
				Str("destination", params.Destination).
				Msg("Provider search failed, continuing down the chain")
			continue
		}
		if len(options) == 0 {
			uc.log.Debug().
				Str("provider", provider.Name()).
				Str("destination", params.Destination).
				Msg("Provider returned no results")
			continue
		}

		uc.metrics.IncProviderResult(provider.Name())
		if i == len(providers)-1 && i > 0 {
			uc.metrics.IncFallback()
		}
		uc.log.Info().
			Str("provider", provider.Name()).
			Str("destination", params.Destination).
			Int("results", len(options)).
			Msg("Provider returned options")

		// Post-filters apply to the winning set only. The budget cap may
		// legitimately empty it; the category preference never does.
		options = ApplyBudgetFilter(options, params.MaxNightlyPriceINR)
		options = ApplyCategoryPreference(options, params.PreferredCategories)
		return options
	}

	// Unreachable with a correctly built chain: the terminal provider is
	// always available and never returns empty.
	uc.log.Warn().
		Str("destination", params.Destination).
		Msg("Provider chain exhausted without results")
	return []domain.AccommodationOption{}
}

// tryProvider invokes a single provider with panic recovery, so a
// misbehaving adapter cannot take down the whole search.
func (uc *accommodationUseCase) tryProvider(ctx context.Context, provider domain.AccommodationProvider, params domain.SearchParams) (options []domain.AccommodationOption, err error) {
	defer func() {
		if r := recover(); r != nil {
			options = nil
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()

	start := time.Now()
	options, err = provider.Search(ctx, params)
	uc.metrics.ObserveProviderLatency(provider.Name(), time.Since(start).Seconds())
	return options, err
}

// Ensure accommodationUseCase implements AccommodationUseCase at compile time.
var _ AccommodationUseCase = (*accommodationUseCase)(nil)
