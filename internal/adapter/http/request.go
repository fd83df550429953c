// Package http provides the HTTP handler layer for the accommodation search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// SearchAccommodationsRequest represents the request body for a single
// destination search.
type SearchAccommodationsRequest struct {
	// Destination is the free-text destination name (e.g., "Manali")
	Destination string `json:"destination"`

	// CheckIn is the check-in date in YYYY-MM-DD format
	CheckIn string `json:"check_in"`

	// CheckOut is the check-out date in YYYY-MM-DD format
	CheckOut string `json:"check_out"`

	// Guests is the number of guests (defaults to 1)
	Guests int `json:"guests,omitempty"`

	// MaxNightlyPriceINR caps the nightly price; options above it are dropped
	MaxNightlyPriceINR *int `json:"max_nightly_price_inr,omitempty" example:"3000"`

	// PreferredCategories softly restricts results to these lodging categories
	PreferredCategories []string `json:"preferred_categories,omitempty" example:"hostel,guesthouse"`

	// Lat and Lng optionally pin the destination to coordinates
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	// LocationCode is an optional IATA city code override (e.g., "JAI")
	LocationCode string `json:"location_code,omitempty"`
}

// EnrichItineraryRequest represents the request body for itinerary
// enrichment: a day-by-day plan whose overnight stops need live options.
type EnrichItineraryRequest struct {
	// Days is the day-by-day plan to enrich
	Days []PlanDayDTO `json:"days"`

	// CheckIn is the trip start date in YYYY-MM-DD format
	CheckIn string `json:"check_in"`

	// CheckOut is the trip end date in YYYY-MM-DD format
	CheckOut string `json:"check_out"`

	// Guests is the number of travelers (defaults to 1)
	Guests int `json:"guests,omitempty"`

	// TotalBudgetINR is the total trip budget; a per-night lodging budget
	// is derived from it
	TotalBudgetINR *int `json:"total_budget_inr,omitempty" example:"40000"`

	// TravelStyle optionally biases lodging categories: budget, luxury,
	// adventure, pilgrimage, or wildlife
	TravelStyle string `json:"travel_style,omitempty" example:"budget"`

	// PreferredCategory pins the lodging category, overriding TravelStyle
	PreferredCategory string `json:"preferred_category,omitempty" example:"homestay"`
}

// accommodationBudgetShare is the fraction of the total trip budget assumed
// to go to lodging.
const accommodationBudgetShare = 0.30

// styleCategories maps a travel style to the lodging categories it implies.
var styleCategories = map[string][]domain.LodgingCategory{
	"budget":     {domain.CategoryHostel, domain.CategoryGuesthouse, domain.CategoryReligiousLodging},
	"luxury":     {domain.CategoryResort, domain.CategoryHotel, domain.CategoryVilla},
	"adventure":  {domain.CategoryCamp, domain.CategoryGuesthouse, domain.CategoryHostel},
	"pilgrimage": {domain.CategoryReligiousLodging, domain.CategoryGuesthouse, domain.CategoryHotel},
	"wildlife":   {domain.CategoryResort, domain.CategoryCamp},
}

// Validation regex patterns.
var (
	datePattern         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	locationCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *SearchAccommodationsRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}

	validateDate(errs, "check_in", r.CheckIn)
	validateDate(errs, "check_out", r.CheckOut)
	validateStayOrder(errs, r.CheckIn, r.CheckOut)

	if r.Guests < 0 {
		errs.Add("guests", "guests must be a non-negative number")
	}

	if r.MaxNightlyPriceINR != nil && *r.MaxNightlyPriceINR <= 0 {
		errs.Add("max_nightly_price_inr", "max_nightly_price_inr must be a positive number")
	}

	for i, c := range r.PreferredCategories {
		if _, ok := domain.ParseLodgingCategory(c); !ok {
			errs.Add(fmt.Sprintf("preferred_categories[%d]", i),
				fmt.Sprintf("unknown lodging category %q", c))
		}
	}

	if r.LocationCode != "" && !locationCodePattern.MatchString(r.LocationCode) {
		errs.Add("location_code", "location_code must be a 3-letter IATA city code")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the enrich request and returns any validation errors.
func (r *EnrichItineraryRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.Days) == 0 {
		errs.Add("days", "days is required and must not be empty")
	}

	validateDate(errs, "check_in", r.CheckIn)
	validateDate(errs, "check_out", r.CheckOut)
	validateStayOrder(errs, r.CheckIn, r.CheckOut)

	if r.Guests < 0 {
		errs.Add("guests", "guests must be a non-negative number")
	}

	if r.TotalBudgetINR != nil && *r.TotalBudgetINR <= 0 {
		errs.Add("total_budget_inr", "total_budget_inr must be a positive number")
	}

	if r.TravelStyle != "" {
		if _, ok := styleCategories[strings.ToLower(r.TravelStyle)]; !ok {
			errs.Add("travel_style", "travel_style must be one of: budget, luxury, adventure, pilgrimage, wildlife")
		}
	}

	if r.PreferredCategory != "" {
		if _, ok := domain.ParseLodgingCategory(r.PreferredCategory); !ok {
			errs.Add("preferred_category", fmt.Sprintf("unknown lodging category %q", r.PreferredCategory))
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// PerNightBudget derives a per-night lodging budget from the total trip
// budget, assuming lodging takes accommodationBudgetShare of it spread over
// the stay's nights. Returns nil when no total budget is given.
func (r *EnrichItineraryRequest) PerNightBudget() *int {
	if r.TotalBudgetINR == nil {
		return nil
	}

	nights := stayNights(r.CheckIn, r.CheckOut)
	perNight := int(float64(*r.TotalBudgetINR) * accommodationBudgetShare / float64(nights))
	return &perNight
}

// LodgingCategories resolves the preferred lodging categories: an explicit
// category wins, otherwise the travel style implies a set, otherwise none.
func (r *EnrichItineraryRequest) LodgingCategories() []domain.LodgingCategory {
	if r.PreferredCategory != "" {
		if c, ok := domain.ParseLodgingCategory(r.PreferredCategory); ok {
			return []domain.LodgingCategory{c}
		}
	}
	return styleCategories[strings.ToLower(r.TravelStyle)]
}

func validateDate(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, field+" is required")
		return
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse(domain.DateFormat, value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

func validateStayOrder(errs *ValidationErrors, checkIn, checkOut string) {
	in, errIn := time.Parse(domain.DateFormat, checkIn)
	out, errOut := time.Parse(domain.DateFormat, checkOut)
	if errIn != nil || errOut != nil {
		return
	}
	if !out.After(in) {
		errs.Add("check_out", "check_out must be after check_in")
	}
}

// stayNights computes the stay length in nights, clamped to at least one.
func stayNights(checkIn, checkOut string) int {
	in, errIn := time.Parse(domain.DateFormat, checkIn)
	out, errOut := time.Parse(domain.DateFormat, checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
