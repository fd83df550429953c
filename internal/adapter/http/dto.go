package http

import (
	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO            `json:"search_criteria"`
	TotalResults   int                          `json:"total_results"`
	Options        []domain.AccommodationOption `json:"options"`
}

// SearchCriteriaDTO echoes the normalized search criteria in the response.
type SearchCriteriaDTO struct {
	Destination         string   `json:"destination"`
	CheckIn             string   `json:"check_in"`
	CheckOut            string   `json:"check_out"`
	Guests              int      `json:"guests"`
	MaxNightlyPriceINR  *int     `json:"max_nightly_price_inr,omitempty"`
	PreferredCategories []string `json:"preferred_categories,omitempty"`
}

// PlanDayDTO is the wire representation of one itinerary day.
type PlanDayDTO struct {
	DayNumber         int                          `json:"day_number"`
	Date              string                       `json:"date"`
	Title             string                       `json:"title,omitempty"`
	Summary           string                       `json:"summary,omitempty"`
	OvernightLocation string                       `json:"overnight_location,omitempty"`
	EstimatedCostINR  *int                         `json:"estimated_cost_inr,omitempty"`
	Suggestions       []LodgingSuggestionDTO       `json:"accommodation_suggestions,omitempty"`
	Options           []domain.AccommodationOption `json:"accommodation_options,omitempty"`
}

// LodgingSuggestionDTO is the wire representation of a name-only lodging idea.
type LodgingSuggestionDTO struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Note     string `json:"note,omitempty"`
}

// EnrichResponseDTO is the data transfer object for enrichment responses.
type EnrichResponseDTO struct {
	Days               []PlanDayDTO `json:"days"`
	OvernightLocations []string     `json:"overnight_locations"`
}
