package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateFormat is the calendar date layout used throughout the system.
// Stays are expressed as calendar dates, never timestamps.
const DateFormat = "2006-01-02"

// datePattern matches dates in YYYY-MM-DD format.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SearchParams defines the inputs to a single-destination accommodation
// search. It is a value type, freely copied between goroutines.
type SearchParams struct {
	// Destination is the free-text destination name; matching against
	// provider catalogues is case-insensitive
	Destination string `json:"destination"`

	// CheckIn is the check-in date in YYYY-MM-DD format
	CheckIn string `json:"check_in"`

	// CheckOut is the check-out date in YYYY-MM-DD format,
	// strictly after CheckIn
	CheckOut string `json:"check_out"`

	// Guests is the number of guests (default: 1)
	Guests int `json:"guests"`

	// MaxNightlyPriceINR caps the nightly price; options with a known price
	// above the cap are dropped, options without a price always pass
	MaxNightlyPriceINR *int `json:"max_nightly_price_inr,omitempty"`

	// PreferredCategories is a soft preference: results are restricted to
	// these categories only when at least one option matches
	PreferredCategories []LodgingCategory `json:"preferred_categories,omitempty"`

	// Lat and Lng are optional destination-centre coordinates for
	// geo-radius providers
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	// LocationCode is an optional provider-specific location code
	// (e.g. an IATA city code), used when already known by the caller
	LocationCode string `json:"location_code,omitempty"`
}

// Validate checks if the search parameters are valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (p *SearchParams) Validate() error {
	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}

	checkIn, err := parseDate("check_in", p.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := parseDate("check_out", p.CheckOut)
	if err != nil {
		return err
	}

	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check_out must be after check_in", ErrInvalidRequest)
	}

	if p.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrInvalidRequest)
	}

	if p.MaxNightlyPriceINR != nil && *p.MaxNightlyPriceINR <= 0 {
		return fmt.Errorf("%w: max_nightly_price_inr must be positive", ErrInvalidRequest)
	}

	for _, c := range p.PreferredCategories {
		if !c.IsValid() {
			return fmt.Errorf("%w: unknown lodging category %q", ErrInvalidRequest, string(c))
		}
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *SearchParams) SetDefaults() {
	if p.Guests == 0 {
		p.Guests = 1
	}
}

// Nights returns the stay duration in nights. Returns 1 if the dates are
// unparseable or inverted, so price-per-night math never divides by zero.
func (p *SearchParams) Nights() int {
	checkIn, errIn := time.Parse(DateFormat, p.CheckIn)
	checkOut, errOut := time.Parse(DateFormat, p.CheckOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// DestinationKey returns the canonical lookup key for the destination,
// lowercased and trimmed. Providers key their catalogues by this value.
func (p *SearchParams) DestinationKey() string {
	return strings.ToLower(strings.TrimSpace(p.Destination))
}

// parseDate validates a date field and returns the parsed calendar date.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !datePattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return t, nil
}

// StayParams holds the stay parameters shared by every destination in a
// multi-location search: dates, guest count, budget ceiling, and category
// preferences. Only the destination varies per search.
type StayParams struct {
	CheckIn             string            `json:"check_in"`
	CheckOut            string            `json:"check_out"`
	Guests              int               `json:"guests"`
	MaxNightlyPriceINR  *int              `json:"max_nightly_price_inr,omitempty"`
	PreferredCategories []LodgingCategory `json:"preferred_categories,omitempty"`
}

// ParamsFor builds the SearchParams for one destination from the shared
// stay parameters.
func (s StayParams) ParamsFor(destination string) SearchParams {
	return SearchParams{
		Destination:         destination,
		CheckIn:             s.CheckIn,
		CheckOut:            s.CheckOut,
		Guests:              s.Guests,
		MaxNightlyPriceINR:  s.MaxNightlyPriceINR,
		PreferredCategories: s.PreferredCategories,
	}
}
