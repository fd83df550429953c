package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// locationResult carries one destination's resolved options from its
// search goroutine back to the gathering loop.
type locationResult struct {
	Location string
	Options  []domain.AccommodationOption
}

// SearchLocations implements AccommodationUseCase.SearchLocations.
//
// Every distinct destination gets its own goroutine, so total latency is
// bounded by the slowest single destination's chain traversal, not the sum.
// The returned mapping always contains exactly one key per distinct input
// destination; a failed lookup maps to an empty list, never aborts siblings.
func (uc *accommodationUseCase) SearchLocations(ctx context.Context, locations []string, stay domain.StayParams) (map[string][]domain.AccommodationOption, error) {
	unique := dedupeLocations(locations)

	out := make(map[string][]domain.AccommodationOption, len(unique))
	if len(unique) == 0 {
		return out, nil
	}

	// Buffered channel so no goroutine blocks on send.
	results := make(chan locationResult, len(unique))

	var wg sync.WaitGroup
	for _, loc := range unique {
		wg.Add(1)
		go func(location string) {
			defer wg.Done()
			results <- uc.searchLocation(ctx, location, stay)
		}(loc)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		out[r.Location] = r.Options
	}

	return out, nil
}

// searchLocation resolves one destination, converting any error or panic
// into an empty option list for that destination only.
func (uc *accommodationUseCase) searchLocation(ctx context.Context, location string, stay domain.StayParams) (res locationResult) {
	res = locationResult{
		Location: location,
		Options:  []domain.AccommodationOption{},
	}

	defer func() {
		if r := recover(); r != nil {
			uc.log.Error().
				Str("location", location).
				Interface("panic", r).
				Msg("Location search panicked")
			res.Options = []domain.AccommodationOption{}
		}
	}()

	options, err := uc.Search(ctx, stay.ParamsFor(location))
	if err != nil {
		uc.log.Warn().
			Err(err).
			Str("location", location).
			Msg("Location search failed")
		return res
	}

	res.Options = options
	return res
}

// dedupeLocations trims each location, drops empties, and removes
// duplicates while preserving first-seen order.
func dedupeLocations(locations []string) []string {
	seen := make(map[string]struct{}, len(locations))
	out := make([]string, 0, len(locations))
	for _, loc := range locations {
		trimmed := strings.TrimSpace(loc)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
