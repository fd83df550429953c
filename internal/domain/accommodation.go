// Package domain contains the core business entities and rules for the
// accommodation aggregation system. These entities are provider-agnostic and
// form the foundation upon which all other components are built.
package domain

// LodgingCategory classifies an accommodation option into a fixed vocabulary.
// Provider adapters map their upstream category/kind strings onto this enum
// during normalization, defaulting to CategoryHotel when unmappable.
type LodgingCategory string

// Supported lodging categories.
const (
	CategoryHotel            LodgingCategory = "hotel"
	CategoryHostel           LodgingCategory = "hostel"
	CategoryHomestay         LodgingCategory = "homestay"
	CategoryResort           LodgingCategory = "resort"
	CategoryCamp             LodgingCategory = "camp"
	CategoryGuesthouse       LodgingCategory = "guesthouse"
	CategoryVilla            LodgingCategory = "villa"
	CategoryReligiousLodging LodgingCategory = "religious-lodging"
)

// allCategories is used for validation lookups.
var allCategories = map[LodgingCategory]bool{
	CategoryHotel:            true,
	CategoryHostel:           true,
	CategoryHomestay:         true,
	CategoryResort:           true,
	CategoryCamp:             true,
	CategoryGuesthouse:       true,
	CategoryVilla:            true,
	CategoryReligiousLodging: true,
}

// IsValid checks if the category is part of the fixed vocabulary.
func (c LodgingCategory) IsValid() bool {
	return allCategories[c]
}

// ParseLodgingCategory converts a raw category string to a LodgingCategory.
// The second return value is false when the string is not in the vocabulary.
func ParseLodgingCategory(s string) (LodgingCategory, bool) {
	c := LodgingCategory(s)
	return c, c.IsValid()
}

// PriceTier is a coarse bucket derived from a numeric nightly price.
type PriceTier string

// Price tiers, derived from nightly prices in INR.
const (
	// TierBudget covers nightly prices below 1,500 INR.
	TierBudget PriceTier = "budget"

	// TierMid covers nightly prices from 1,500 to 4,999 INR.
	// It is also the default when no price is known.
	TierMid PriceTier = "mid"

	// TierPremium covers nightly prices from 5,000 to 14,999 INR.
	TierPremium PriceTier = "premium"

	// TierLuxury covers nightly prices of 15,000 INR and above.
	TierLuxury PriceTier = "luxury"
)

// Tier boundaries in INR per night.
const (
	tierMidMinINR     = 1500
	tierPremiumMinINR = 5000
	tierLuxuryMinINR  = 15000
)

// PriceTierFromINR buckets a nightly price into a PriceTier.
// A nil price yields TierMid, a deliberate approximation for sources that
// provide no pricing data, not an error.
func PriceTierFromINR(pricePerNight *int) PriceTier {
	if pricePerNight == nil {
		return TierMid
	}
	switch {
	case *pricePerNight < tierMidMinINR:
		return TierBudget
	case *pricePerNight < tierPremiumMinINR:
		return TierMid
	case *pricePerNight < tierLuxuryMinINR:
		return TierPremium
	default:
		return TierLuxury
	}
}

// AccommodationOption represents a single lodging result from a provider.
// All monetary values are in INR. The ID is unique only within the producing
// provider; collisions across providers are expected and acceptable.
type AccommodationOption struct {
	// ID is the provider-scoped identifier for this option
	ID string `json:"id"`

	// Name is the display name of the property
	Name string `json:"name"`

	// Category is the lodging category (hotel, hostel, homestay, ...)
	Category LodgingCategory `json:"category"`

	// Provider identifies which data source produced this option
	Provider string `json:"provider"`

	// Address is a free-text address string
	Address string `json:"address"`

	// PriceTier is the derived price bucket, always consistent with
	// PricePerNightINR when that is present
	PriceTier PriceTier `json:"price_tier"`

	// PricePerNightINR is the nightly price in INR, when known
	PricePerNightINR *int `json:"price_per_night_inr,omitempty"`

	// Rating is the guest rating on a 0-5 scale, when known
	Rating *float64 `json:"rating,omitempty"`

	// ReviewCount is the number of reviews behind the rating
	ReviewCount int `json:"review_count,omitempty"`

	// Lat and Lng are the property coordinates, when known
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	// Amenities lists amenity labels (e.g. "Free Wi-Fi", "Pool")
	Amenities []string `json:"amenities,omitempty"`

	// BookingURL is a direct booking link, when available
	BookingURL string `json:"booking_url,omitempty"`

	// ImageURL is a property image link, when available
	ImageURL string `json:"image_url,omitempty"`

	// DistanceKm is the distance to the destination centre, when known
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// HasKnownPrice reports whether the option carries a nightly price.
func (o AccommodationOption) HasKnownPrice() bool {
	return o.PricePerNightINR != nil
}

// TierMatchesPrice reports whether the price tier is consistent with the
// nightly price. Options without a price are consistent only with TierMid.
func (o AccommodationOption) TierMatchesPrice() bool {
	return o.PriceTier == PriceTierFromINR(o.PricePerNightINR)
}

// CloneOptions returns an independent copy of an option list. The merge step
// uses it so that days sharing an overnight location never share a slice.
func CloneOptions(options []AccommodationOption) []AccommodationOption {
	if options == nil {
		return nil
	}
	return append([]AccommodationOption(nil), options...)
}
