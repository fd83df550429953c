// Package http provides the HTTP handler layer for the accommodation search API.
package http

import (
	"strings"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// ToSearchParams converts a SearchAccommodationsRequest to domain.SearchParams.
func ToSearchParams(req *SearchAccommodationsRequest) domain.SearchParams {
	guests := req.Guests
	if guests < 1 {
		guests = 1
	}

	return domain.SearchParams{
		Destination:         strings.TrimSpace(req.Destination),
		CheckIn:             req.CheckIn,
		CheckOut:            req.CheckOut,
		Guests:              guests,
		MaxNightlyPriceINR:  req.MaxNightlyPriceINR,
		PreferredCategories: toCategories(req.PreferredCategories),
		Lat:                 req.Lat,
		Lng:                 req.Lng,
		LocationCode:        strings.ToUpper(strings.TrimSpace(req.LocationCode)),
	}
}

// ToStayParams converts an EnrichItineraryRequest to the per-location stay
// parameters, deriving the per-night budget and category preference.
func ToStayParams(req *EnrichItineraryRequest) domain.StayParams {
	guests := req.Guests
	if guests < 1 {
		guests = 1
	}

	return domain.StayParams{
		CheckIn:             req.CheckIn,
		CheckOut:            req.CheckOut,
		Guests:              guests,
		MaxNightlyPriceINR:  req.PerNightBudget(),
		PreferredCategories: req.LodgingCategories(),
	}
}

// ToDomainDays converts wire plan days to domain plan days.
func ToDomainDays(dtos []PlanDayDTO) []domain.PlanDay {
	days := make([]domain.PlanDay, 0, len(dtos))
	for _, d := range dtos {
		days = append(days, domain.PlanDay{
			DayNumber:         d.DayNumber,
			Date:              d.Date,
			Title:             d.Title,
			Summary:           d.Summary,
			OvernightLocation: d.OvernightLocation,
			EstimatedCostINR:  d.EstimatedCostINR,
			Suggestions:       toSuggestions(d.Suggestions),
			Options:           d.Options,
		})
	}
	return days
}

// FromDomainDays converts domain plan days back to the wire representation.
func FromDomainDays(days []domain.PlanDay) []PlanDayDTO {
	dtos := make([]PlanDayDTO, 0, len(days))
	for _, d := range days {
		dtos = append(dtos, PlanDayDTO{
			DayNumber:         d.DayNumber,
			Date:              d.Date,
			Title:             d.Title,
			Summary:           d.Summary,
			OvernightLocation: d.OvernightLocation,
			EstimatedCostINR:  d.EstimatedCostINR,
			Suggestions:       fromSuggestions(d.Suggestions),
			Options:           d.Options,
		})
	}
	return dtos
}

func toCategories(values []string) []domain.LodgingCategory {
	if len(values) == 0 {
		return nil
	}
	categories := make([]domain.LodgingCategory, 0, len(values))
	for _, v := range values {
		if c, ok := domain.ParseLodgingCategory(strings.ToLower(strings.TrimSpace(v))); ok {
			categories = append(categories, c)
		}
	}
	return categories
}

func toSuggestions(dtos []LodgingSuggestionDTO) []domain.LodgingSuggestion {
	if len(dtos) == 0 {
		return nil
	}
	suggestions := make([]domain.LodgingSuggestion, 0, len(dtos))
	for _, s := range dtos {
		suggestions = append(suggestions, domain.LodgingSuggestion{
			Name:     s.Name,
			Category: s.Category,
			Note:     s.Note,
		})
	}
	return suggestions
}

func fromSuggestions(suggestions []domain.LodgingSuggestion) []LodgingSuggestionDTO {
	if len(suggestions) == 0 {
		return nil
	}
	dtos := make([]LodgingSuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		dtos = append(dtos, LodgingSuggestionDTO{
			Name:     s.Name,
			Category: s.Category,
			Note:     s.Note,
		})
	}
	return dtos
}
