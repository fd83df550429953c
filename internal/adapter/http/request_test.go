package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

func intPtr(v int) *int { return &v }

func validSearchRequest() SearchAccommodationsRequest {
	return SearchAccommodationsRequest{
		Destination: "Manali",
		CheckIn:     "2026-10-01",
		CheckOut:    "2026-10-04",
		Guests:      2,
	}
}

func TestSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *SearchAccommodationsRequest)
		wantField string
	}{
		{
			name:   "valid minimal request",
			mutate: func(r *SearchAccommodationsRequest) {},
		},
		{
			name: "valid full request",
			mutate: func(r *SearchAccommodationsRequest) {
				r.MaxNightlyPriceINR = intPtr(3000)
				r.PreferredCategories = []string{"hostel", "guesthouse"}
				r.LocationCode = "JAI"
			},
		},
		{
			name:      "missing destination",
			mutate:    func(r *SearchAccommodationsRequest) { r.Destination = "" },
			wantField: "destination",
		},
		{
			name:      "whitespace destination",
			mutate:    func(r *SearchAccommodationsRequest) { r.Destination = "   " },
			wantField: "destination",
		},
		{
			name:      "missing check_in",
			mutate:    func(r *SearchAccommodationsRequest) { r.CheckIn = "" },
			wantField: "check_in",
		},
		{
			name:      "malformed check_in",
			mutate:    func(r *SearchAccommodationsRequest) { r.CheckIn = "01-10-2026" },
			wantField: "check_in",
		},
		{
			name:      "impossible calendar date",
			mutate:    func(r *SearchAccommodationsRequest) { r.CheckOut = "2026-02-30" },
			wantField: "check_out",
		},
		{
			name: "check_out before check_in",
			mutate: func(r *SearchAccommodationsRequest) {
				r.CheckIn = "2026-10-04"
				r.CheckOut = "2026-10-01"
			},
			wantField: "check_out",
		},
		{
			name: "check_out equal to check_in",
			mutate: func(r *SearchAccommodationsRequest) {
				r.CheckOut = r.CheckIn
			},
			wantField: "check_out",
		},
		{
			name:      "negative guests",
			mutate:    func(r *SearchAccommodationsRequest) { r.Guests = -1 },
			wantField: "guests",
		},
		{
			name:      "zero max nightly price",
			mutate:    func(r *SearchAccommodationsRequest) { r.MaxNightlyPriceINR = intPtr(0) },
			wantField: "max_nightly_price_inr",
		},
		{
			name:      "unknown lodging category",
			mutate:    func(r *SearchAccommodationsRequest) { r.PreferredCategories = []string{"igloo"} },
			wantField: "preferred_categories[0]",
		},
		{
			name:      "location code too short",
			mutate:    func(r *SearchAccommodationsRequest) { r.LocationCode = "JA" },
			wantField: "location_code",
		},
		{
			name:      "location code with digits",
			mutate:    func(r *SearchAccommodationsRequest) { r.LocationCode = "J4I" },
			wantField: "location_code",
		},
		{
			name:   "lowercase location code accepted",
			mutate: func(r *SearchAccommodationsRequest) { r.LocationCode = "del" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSearchRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			verrs, ok := err.(*ValidationErrors)
			require.True(t, ok, "should return *ValidationErrors")
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestSearchRequest_Validate_CollectsAllErrors(t *testing.T) {
	req := SearchAccommodationsRequest{
		Destination: "",
		CheckIn:     "bad",
		CheckOut:    "worse",
		Guests:      -2,
	}

	err := req.Validate()
	require.Error(t, err)

	verrs, ok := err.(*ValidationErrors)
	require.True(t, ok)

	fields := verrs.ToMap()
	assert.Contains(t, fields, "destination")
	assert.Contains(t, fields, "check_in")
	assert.Contains(t, fields, "check_out")
	assert.Contains(t, fields, "guests")
}

func validEnrichRequest() EnrichItineraryRequest {
	return EnrichItineraryRequest{
		Days: []PlanDayDTO{
			{DayNumber: 1, Date: "2026-10-01", Title: "Arrival", OvernightLocation: "Manali"},
			{DayNumber: 2, Date: "2026-10-02", Title: "Solang Valley", OvernightLocation: "Manali"},
		},
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-04",
		Guests:   2,
	}
}

func TestEnrichRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *EnrichItineraryRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *EnrichItineraryRequest) {},
		},
		{
			name: "valid with style and budget",
			mutate: func(r *EnrichItineraryRequest) {
				r.TotalBudgetINR = intPtr(40000)
				r.TravelStyle = "budget"
			},
		},
		{
			name:      "empty days",
			mutate:    func(r *EnrichItineraryRequest) { r.Days = nil },
			wantField: "days",
		},
		{
			name:      "missing check_out",
			mutate:    func(r *EnrichItineraryRequest) { r.CheckOut = "" },
			wantField: "check_out",
		},
		{
			name:      "zero total budget",
			mutate:    func(r *EnrichItineraryRequest) { r.TotalBudgetINR = intPtr(0) },
			wantField: "total_budget_inr",
		},
		{
			name:      "unknown travel style",
			mutate:    func(r *EnrichItineraryRequest) { r.TravelStyle = "glamping" },
			wantField: "travel_style",
		},
		{
			name:   "travel style is case insensitive",
			mutate: func(r *EnrichItineraryRequest) { r.TravelStyle = "Luxury" },
		},
		{
			name:      "unknown preferred category",
			mutate:    func(r *EnrichItineraryRequest) { r.PreferredCategory = "treehouse" },
			wantField: "preferred_category",
		},
		{
			name:   "known preferred category",
			mutate: func(r *EnrichItineraryRequest) { r.PreferredCategory = "homestay" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEnrichRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			verrs, ok := err.(*ValidationErrors)
			require.True(t, ok)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestEnrichRequest_PerNightBudget(t *testing.T) {
	t.Run("derives 30 percent spread over nights", func(t *testing.T) {
		req := validEnrichRequest()
		req.TotalBudgetINR = intPtr(40000)

		// 40000 * 0.30 / 3 nights = 4000
		budget := req.PerNightBudget()
		require.NotNil(t, budget)
		assert.Equal(t, 4000, *budget)
	})

	t.Run("nil when no total budget", func(t *testing.T) {
		req := validEnrichRequest()
		assert.Nil(t, req.PerNightBudget())
	})

	t.Run("unparseable dates clamp to one night", func(t *testing.T) {
		req := validEnrichRequest()
		req.TotalBudgetINR = intPtr(10000)
		req.CheckIn = "not-a-date"

		budget := req.PerNightBudget()
		require.NotNil(t, budget)
		assert.Equal(t, 3000, *budget)
	})
}

func TestEnrichRequest_LodgingCategories(t *testing.T) {
	t.Run("explicit category wins over style", func(t *testing.T) {
		req := validEnrichRequest()
		req.TravelStyle = "luxury"
		req.PreferredCategory = "hostel"

		assert.Equal(t, []domain.LodgingCategory{domain.CategoryHostel}, req.LodgingCategories())
	})

	t.Run("style implies a category set", func(t *testing.T) {
		req := validEnrichRequest()
		req.TravelStyle = "pilgrimage"

		cats := req.LodgingCategories()
		assert.Contains(t, cats, domain.CategoryReligiousLodging)
		assert.Contains(t, cats, domain.CategoryGuesthouse)
	})

	t.Run("no style and no category yields none", func(t *testing.T) {
		req := validEnrichRequest()
		assert.Empty(t, req.LodgingCategories())
	})
}

func TestToSearchParams(t *testing.T) {
	req := &SearchAccommodationsRequest{
		Destination:         "  Manali ",
		CheckIn:             "2026-10-01",
		CheckOut:            "2026-10-04",
		Guests:              0,
		MaxNightlyPriceINR:  intPtr(2500),
		PreferredCategories: []string{" Hostel ", "guesthouse", "igloo"},
		LocationCode:        "del",
	}

	params := ToSearchParams(req)

	assert.Equal(t, "Manali", params.Destination)
	assert.Equal(t, 1, params.Guests, "zero guests should default to one")
	assert.Equal(t, "DEL", params.LocationCode)
	require.NotNil(t, params.MaxNightlyPriceINR)
	assert.Equal(t, 2500, *params.MaxNightlyPriceINR)
	// Unknown categories are dropped, known ones normalized
	assert.Equal(t, []domain.LodgingCategory{domain.CategoryHostel, domain.CategoryGuesthouse},
		params.PreferredCategories)
}

func TestToStayParams(t *testing.T) {
	req := validEnrichRequest()
	req.Guests = 0
	req.TotalBudgetINR = intPtr(30000)
	req.TravelStyle = "budget"

	params := ToStayParams(&req)

	assert.Equal(t, "2026-10-01", params.CheckIn)
	assert.Equal(t, "2026-10-04", params.CheckOut)
	assert.Equal(t, 1, params.Guests)
	require.NotNil(t, params.MaxNightlyPriceINR)
	assert.Equal(t, 3000, *params.MaxNightlyPriceINR)
	assert.Equal(t, styleCategories["budget"], params.PreferredCategories)
}
