package opentripmap

import (
	"strings"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// ProviderName is the unique identifier for the OpenTripMap provider.
const ProviderName = "opentripmap"

// kindCategories maps OpenTripMap kind tags to lodging categories, checked
// in order so the more specific tags win over the generic hotel default.
var kindCategories = []struct {
	kind     string
	category domain.LodgingCategory
}{
	{"hostels", domain.CategoryHostel},
	{"guest_houses", domain.CategoryGuesthouse},
	{"camp_sites", domain.CategoryCamp},
	{"caravan_sites", domain.CategoryCamp},
	{"hotels", domain.CategoryHotel},
}

// rateStars maps the OpenTripMap popularity rate (0-3, driven by Wikipedia
// presence) to an approximate star rating. Rate 0 carries no signal.
var rateStars = map[int]float64{
	1: 2.0,
	2: 3.5,
	3: 4.5,
}

func inferCategory(kinds string) domain.LodgingCategory {
	for _, kc := range kindCategories {
		if strings.Contains(kinds, kc.kind) {
			return kc.category
		}
	}
	return domain.CategoryHotel
}

// mapPlace converts a radius-search place plus its detail record into a
// domain option. OpenTripMap carries no pricing, so the price stays unknown
// and the tier defaults to mid. Returns false when the place has no usable
// name.
func mapPlace(p place, detail placeDetail, destination string) (domain.AccommodationOption, bool) {
	name := detail.Name
	if name == "" {
		name = p.Name
	}
	if name == "" {
		name = detail.WikipediaExtracts.Title
	}
	if name == "" {
		return domain.AccommodationOption{}, false
	}

	address := assembleAddress(detail.Address)
	if address == "" {
		address = destination
	}

	lat := p.Point.Lat
	lng := p.Point.Lon
	distanceKm := p.Dist / 1000

	opt := domain.AccommodationOption{
		ID:         p.XID,
		Name:       name,
		Category:   inferCategory(p.Kinds),
		Provider:   ProviderName,
		Address:    address,
		PriceTier:  domain.TierMid,
		Lat:        &lat,
		Lng:        &lng,
		DistanceKm: &distanceKm,
		ImageURL:   detail.Preview.Source,
	}

	if stars, ok := rateStars[p.Rate]; ok {
		opt.Rating = &stars
	}

	return opt, true
}

func assembleAddress(a detailAddress) string {
	city := a.City
	if city == "" {
		city = a.Town
	}

	parts := make([]string, 0, 4)
	for _, part := range []string{a.Road, a.Suburb, city, a.State} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
