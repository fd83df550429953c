package usecase

import (
	"context"
	"strings"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// UniqueOvernightLocations returns the distinct trimmed overnight locations
// across all days, preserving first-seen order. Days with an empty overnight
// location contribute nothing.
func UniqueOvernightLocations(days []domain.PlanDay) []string {
	locations := make([]string, 0, len(days))
	for _, day := range days {
		locations = append(locations, day.OvernightLocation)
	}
	return dedupeLocations(locations)
}

// MergePlan attaches resolved options to each day whose trimmed overnight
// location is a key in byLocation. Days with no overnight location, or
// whose location is absent from the mapping, keep their existing options
// untouched. Each matched day receives its own copy of the option list, so
// mutating one day's list never affects another's.
func MergePlan(days []domain.PlanDay, byLocation map[string][]domain.AccommodationOption) []domain.PlanDay {
	merged := make([]domain.PlanDay, len(days))
	copy(merged, days)

	for i := range merged {
		loc := strings.TrimSpace(merged[i].OvernightLocation)
		if loc == "" {
			continue
		}
		options, ok := byLocation[loc]
		if !ok {
			continue
		}
		merged[i].Options = domain.CloneOptions(options)
	}

	return merged
}

// EnrichPlan implements AccommodationUseCase.EnrichPlan: it composes the
// multi-location dispatch with the merge step. Days are returned unchanged
// when no day names an overnight location.
func (uc *accommodationUseCase) EnrichPlan(ctx context.Context, days []domain.PlanDay, stay domain.StayParams) ([]domain.PlanDay, error) {
	locations := UniqueOvernightLocations(days)
	if len(locations) == 0 {
		return days, nil
	}

	byLocation, err := uc.SearchLocations(ctx, locations, stay)
	if err != nil {
		return days, err
	}

	return MergePlan(days, byLocation), nil
}
