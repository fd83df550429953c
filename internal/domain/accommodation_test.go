package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

// TestPriceTierFromINR tests tier bucketing including boundary values.
func TestPriceTierFromINR(t *testing.T) {
	tests := []struct {
		name  string
		price *int
		want  PriceTier
	}{
		{"nil price defaults to mid", nil, TierMid},
		{"zero is budget", intPtr(0), TierBudget},
		{"below mid boundary", intPtr(1499), TierBudget},
		{"mid boundary", intPtr(1500), TierMid},
		{"below premium boundary", intPtr(4999), TierMid},
		{"premium boundary", intPtr(5000), TierPremium},
		{"below luxury boundary", intPtr(14999), TierPremium},
		{"luxury boundary", intPtr(15000), TierLuxury},
		{"well above luxury", intPtr(45000), TierLuxury},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceTierFromINR(tt.price))
		})
	}
}

func TestLodgingCategory_IsValid(t *testing.T) {
	valid := []LodgingCategory{
		CategoryHotel, CategoryHostel, CategoryHomestay, CategoryResort,
		CategoryCamp, CategoryGuesthouse, CategoryVilla, CategoryReligiousLodging,
	}
	for _, c := range valid {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}

	assert.False(t, LodgingCategory("igloo").IsValid())
	assert.False(t, LodgingCategory("").IsValid())
}

func TestParseLodgingCategory(t *testing.T) {
	c, ok := ParseLodgingCategory("hostel")
	assert.True(t, ok)
	assert.Equal(t, CategoryHostel, c)

	_, ok = ParseLodgingCategory("treehouse")
	assert.False(t, ok)
}

func TestAccommodationOption_TierMatchesPrice(t *testing.T) {
	tests := []struct {
		name   string
		option AccommodationOption
		want   bool
	}{
		{
			name:   "priced option with matching tier",
			option: AccommodationOption{PricePerNightINR: intPtr(600), PriceTier: TierBudget},
			want:   true,
		},
		{
			name:   "priced option with stale tier",
			option: AccommodationOption{PricePerNightINR: intPtr(20000), PriceTier: TierBudget},
			want:   false,
		},
		{
			name:   "unpriced option defaults to mid",
			option: AccommodationOption{PriceTier: TierMid},
			want:   true,
		},
		{
			name:   "unpriced option with non-mid tier",
			option: AccommodationOption{PriceTier: TierLuxury},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.option.TierMatchesPrice())
		})
	}
}

func TestCloneOptions(t *testing.T) {
	original := []AccommodationOption{
		{ID: "a", Name: "Alpha"},
		{ID: "b", Name: "Beta"},
	}

	clone := CloneOptions(original)
	assert.Equal(t, original, clone)

	// Mutating the clone must not leak into the original.
	clone[0].Name = "Mutated"
	assert.Equal(t, "Alpha", original[0].Name)

	assert.Nil(t, CloneOptions(nil))
}
