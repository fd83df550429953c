package domain

// PlanDay is one day of an externally generated itinerary. The generation
// step creates it; this core mutates it exactly once, attaching live
// accommodation options keyed by the day's overnight location.
type PlanDay struct {
	// DayNumber is the 1-based position of the day in the itinerary
	DayNumber int `json:"day_number"`

	// Date is the calendar date of the day in YYYY-MM-DD format
	Date string `json:"date"`

	// Title is a short generated headline for the day
	Title string `json:"title,omitempty"`

	// Summary is a generated description of the day
	Summary string `json:"summary,omitempty"`

	// OvernightLocation is the free-text place where the traveller sleeps.
	// May be empty (e.g. an overnight train); empty days are left untouched
	// by the merge step.
	OvernightLocation string `json:"overnight_location,omitempty"`

	// EstimatedCostINR is the generated cost estimate for the day
	EstimatedCostINR *int `json:"estimated_cost_inr,omitempty"`

	// Suggestions are name/description-only lodging ideas produced by the
	// generation step. This core never validates or alters them.
	Suggestions []LodgingSuggestion `json:"accommodation_suggestions,omitempty"`

	// Options holds the live accommodation options attached by the merge
	// step for the day's overnight location
	Options []AccommodationOption `json:"accommodation_options"`
}

// LodgingSuggestion is a generated lodging idea with no live data behind it.
type LodgingSuggestion struct {
	// Name is the suggested property or property type
	Name string `json:"name"`

	// Category is the suggested lodging category as free text
	Category string `json:"category,omitempty"`

	// Note is a short description or tip
	Note string `json:"note,omitempty"`
}
