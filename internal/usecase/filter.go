package usecase

import (
	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// ApplyBudgetFilter drops options whose known nightly price exceeds the cap.
// Options without a price always pass: absence of pricing data is not
// evidence the option is over budget.
//
// Behavior:
//   - Returns the original slice if maxINR is nil (no filtering)
//   - May legitimately return an empty slice (a hard constraint)
//   - Does NOT mutate the input slice
func ApplyBudgetFilter(options []domain.AccommodationOption, maxINR *int) []domain.AccommodationOption {
	if maxINR == nil {
		return options
	}

	result := make([]domain.AccommodationOption, 0, len(options))
	for _, o := range options {
		if o.HasKnownPrice() && *o.PricePerNightINR > *maxINR {
			continue
		}
		result = append(result, o)
	}
	return result
}

// ApplyCategoryPreference restricts options to the preferred categories,
// but only when at least one option matches. A preference that matches
// nothing is ignored and the input is returned unchanged: it is a soft
// preference and must never zero out a result set.
//
// Implemented as a two-phase filter (compute matches, use them only if
// non-empty) rather than an early-return guard.
func ApplyCategoryPreference(options []domain.AccommodationOption, preferred []domain.LodgingCategory) []domain.AccommodationOption {
	if len(preferred) == 0 {
		return options
	}

	preferredSet := make(map[domain.LodgingCategory]struct{}, len(preferred))
	for _, c := range preferred {
		preferredSet[c] = struct{}{}
	}

	matched := make([]domain.AccommodationOption, 0, len(options))
	for _, o := range options {
		if _, ok := preferredSet[o.Category]; ok {
			matched = append(matched, o)
		}
	}

	if len(matched) == 0 {
		return options
	}
	return matched
}
