package amadeus

import (
	"sort"
	"strconv"
	"time"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// ProviderName is the unique identifier for the Amadeus hotel provider.
const ProviderName = "amadeus"

// unknownPriceSentinel sorts options without pricing data last.
const unknownPriceSentinel = 999999

// amenityNames maps Amadeus amenity codes to display names. Codes without a
// mapping are dropped.
var amenityNames = map[string]string{
	"SWIMMING_POOL":    "Pool",
	"WIFI":             "Free Wi-Fi",
	"PARKING":          "Parking",
	"RESTAURANT":       "Restaurant",
	"FITNESS_CENTER":   "Gym",
	"SPA":              "Spa",
	"AIR_CONDITIONING": "AC",
	"PETS_ALLOWED":     "Pet-friendly",
	"ROOM_SERVICE":     "Room service",
}

// normalize converts raw hotel offers to domain options, sorted by nightly
// price ascending with unpriced options last.
func normalize(data []hotelOffers) []domain.AccommodationOption {
	options := make([]domain.AccommodationOption, 0, len(data))
	for _, ho := range data {
		opt, ok := normalizeOffer(ho)
		if !ok {
			continue
		}
		options = append(options, opt)
	}

	sort.SliceStable(options, func(i, j int) bool {
		return sortPrice(options[i]) < sortPrice(options[j])
	})
	return options
}

// normalizeOffer converts one hotel's best offer to a domain option.
// Everything Amadeus lists through the hotel APIs is a hotel.
func normalizeOffer(ho hotelOffers) (domain.AccommodationOption, bool) {
	if ho.Hotel.HotelID == "" && ho.Hotel.Name == "" {
		return domain.AccommodationOption{}, false
	}

	var best offer
	if len(ho.Offers) > 0 {
		best = ho.Offers[0]
	}

	pricePerNight := nightlyPrice(best)

	name := ho.Hotel.Name
	if name == "" {
		name = "Unknown Hotel"
	}

	var address string
	if len(ho.Hotel.Address.Lines) > 0 {
		address = ho.Hotel.Address.Lines[0]
	}

	opt := domain.AccommodationOption{
		ID:               ho.Hotel.HotelID,
		Name:             name,
		Category:         domain.CategoryHotel,
		Provider:         ProviderName,
		Address:          address,
		PricePerNightINR: pricePerNight,
		PriceTier:        domain.PriceTierFromINR(pricePerNight),
		Lat:              ho.Hotel.Latitude,
		Lng:              ho.Hotel.Longitude,
		Amenities:        mapAmenities(ho.Hotel.Amenities),
	}

	if rating, err := strconv.ParseFloat(ho.Hotel.Rating, 64); err == nil && rating > 0 {
		opt.Rating = &rating
	}

	return opt, true
}

// nightlyPrice derives the per-night price in whole rupees from an offer's
// total and its stay length. Returns nil when the offer has no usable price.
func nightlyPrice(best offer) *int {
	total := best.Price.Total
	if total == "" {
		total = best.Price.Base
	}
	if total == "" {
		return nil
	}

	amount, err := strconv.ParseFloat(total, 64)
	if err != nil {
		return nil
	}

	nights := stayNights(best.CheckInDate, best.CheckOutDate)
	price := int(amount / float64(nights))
	return &price
}

// stayNights computes the offer's stay length, clamped to at least one night.
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

func mapAmenities(codes []string) []string {
	amenities := make([]string, 0, len(codes))
	for _, code := range codes {
		if name, ok := amenityNames[code]; ok {
			amenities = append(amenities, name)
		}
	}
	return amenities
}

func sortPrice(o domain.AccommodationOption) int {
	if o.PricePerNightINR == nil {
		return unknownPriceSentinel
	}
	return *o.PricePerNightINR
}
