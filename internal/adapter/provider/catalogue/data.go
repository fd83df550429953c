package catalogue

import (
	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// entry is one curated catalogue row. Prices reflect realistic 2025 Indian
// market rates per night.
type entry struct {
	Name        string
	Category    domain.LodgingCategory
	PriceINR    int
	Rating      float64
	ReviewCount int
	Address     string
	Amenities   []string
	BookingURL  string
}

// destinationCatalogue is keyed by lowercase trimmed destination name.
var destinationCatalogue = map[string][]entry{
	"manali": {
		{Name: "Zostel Manali", Category: domain.CategoryHostel, PriceINR: 600,
			Rating: 4.3, ReviewCount: 1840, Address: "Old Manali Road",
			Amenities:  []string{"Free Wi-Fi", "Common kitchen", "Mountain view", "Bonfire"},
			BookingURL: "https://www.zostel.com/zostel/manali/"},
		{Name: "Apple Country Resort", Category: domain.CategoryResort, PriceINR: 2800,
			Rating: 4.1, ReviewCount: 760, Address: "Manali-Naggar Road",
			Amenities: []string{"Restaurant", "Free Wi-Fi", "Mountain view", "Parking"}},
		{Name: "Span Resort & Spa", Category: domain.CategoryResort, PriceINR: 8500,
			Rating: 4.5, ReviewCount: 420, Address: "Katrain, Kullu-Manali Highway",
			Amenities: []string{"Spa", "Pool", "Restaurant", "River view", "Free Wi-Fi"}},
		{Name: "Himalayan Abode", Category: domain.CategoryHomestay, PriceINR: 1200,
			Rating: 4.6, ReviewCount: 215, Address: "Old Manali Village",
			Amenities: []string{"Home-cooked meals", "Apple orchard", "Free Wi-Fi"}},
	},
	"spiti valley": {
		{Name: "Spiti Sarai", Category: domain.CategoryGuesthouse, PriceINR: 1800,
			Rating: 4.7, ReviewCount: 340, Address: "Kaza, Spiti",
			Amenities: []string{"Home-cooked meals", "Bonfire", "Stargazing deck", "Free Wi-Fi"}},
		{Name: "Mudhouse Retreat", Category: domain.CategoryHomestay, PriceINR: 900,
			Rating: 4.5, ReviewCount: 180, Address: "Langza Village, Spiti",
			Amenities: []string{"Traditional mud house", "Home-cooked vegetarian meals", "Stunning views"}},
		{Name: "Kaza Camp", Category: domain.CategoryCamp, PriceINR: 1500,
			Rating: 4.2, ReviewCount: 95, Address: "Kaza Outskirts",
			Amenities: []string{"Attached washrooms", "Bonfire", "Dinner included"}},
	},
	"kaza": {
		{Name: "Spiti Sarai", Category: domain.CategoryGuesthouse, PriceINR: 1800,
			Rating: 4.7, ReviewCount: 340, Address: "Kaza, Spiti",
			Amenities: []string{"Home-cooked meals", "Bonfire", "Stargazing deck"}},
		{Name: "Hotel Deyzor", Category: domain.CategoryHotel, PriceINR: 1200,
			Rating: 4.0, ReviewCount: 210, Address: "Main Market, Kaza",
			Amenities: []string{"Restaurant", "Hot water", "Parking"}},
	},
	"rishikesh": {
		{Name: "Zostel Rishikesh", Category: domain.CategoryHostel, PriceINR: 500,
			Rating: 4.4, ReviewCount: 2100, Address: "Laxman Jhula Road",
			Amenities:  []string{"Ganga view", "Free Wi-Fi", "Common kitchen", "Yoga deck"},
			BookingURL: "https://www.zostel.com/zostel/rishikesh/"},
		{Name: "Aloha on the Ganges", Category: domain.CategoryResort, PriceINR: 4500,
			Rating: 4.3, ReviewCount: 580, Address: "Tapovan, Rishikesh",
			Amenities: []string{"Ganga view", "Yoga sessions", "Restaurant", "Spa"}},
		{Name: "Ananda in the Himalayas", Category: domain.CategoryResort, PriceINR: 28000,
			Rating: 4.8, ReviewCount: 320, Address: "Palace Estate, Narendra Nagar",
			Amenities: []string{"Luxury spa", "Pool", "Ayurveda", "Gourmet dining", "Yoga"}},
		{Name: "Vashistha Guest House", Category: domain.CategoryGuesthouse, PriceINR: 800,
			Rating: 4.1, ReviewCount: 430, Address: "Swarg Ashram, Rishikesh",
			Amenities: []string{"Ganga view", "Simple rooms", "Free Wi-Fi"}},
	},
	"goa": {
		{Name: "Zostel Goa", Category: domain.CategoryHostel, PriceINR: 550,
			Rating: 4.2, ReviewCount: 1650, Address: "Arambol, North Goa",
			Amenities:  []string{"Beach access", "Bar", "Pool", "Free Wi-Fi"},
			BookingURL: "https://www.zostel.com/zostel/goa/"},
		{Name: "W Goa", Category: domain.CategoryResort, PriceINR: 18000,
			Rating: 4.7, ReviewCount: 890, Address: "Vagator Beach, North Goa",
			Amenities: []string{"Beach access", "Pool", "Spa", "Multiple restaurants", "DJ"}},
		{Name: "Casa de Goa", Category: domain.CategoryVilla, PriceINR: 5500,
			Rating: 4.5, ReviewCount: 340, Address: "Assagao, North Goa",
			Amenities: []string{"Pool", "Portuguese architecture", "Free Wi-Fi", "Garden"}},
		{Name: "OYO 1234 Coconut Grove", Category: domain.CategoryHotel, PriceINR: 1800,
			Rating: 3.8, ReviewCount: 1200, Address: "Calangute Beach Road",
			Amenities: []string{"AC", "Free Wi-Fi", "Attached bathroom"}},
	},
	"jaipur": {
		{Name: "Zostel Jaipur", Category: domain.CategoryHostel, PriceINR: 450,
			Rating: 4.3, ReviewCount: 980, Address: "Bani Park, Jaipur",
			Amenities:  []string{"Free Wi-Fi", "Common kitchen", "Rooftop", "Heritage building"},
			BookingURL: "https://www.zostel.com/zostel/jaipur/"},
		{Name: "Samode Haveli", Category: domain.CategoryHotel, PriceINR: 12000,
			Rating: 4.6, ReviewCount: 510, Address: "Gangapole, Old City, Jaipur",
			Amenities: []string{"Heritage property", "Pool", "Restaurant", "Courtyard"}},
		{Name: "Rambagh Palace", Category: domain.CategoryHotel, PriceINR: 35000,
			Rating: 4.9, ReviewCount: 760, Address: "Bhawani Singh Road, Jaipur",
			Amenities: []string{"Palace", "Pool", "Spa", "Multiple restaurants", "Gardens"}},
		{Name: "Umaid Mahal", Category: domain.CategoryHotel, PriceINR: 3500,
			Rating: 4.2, ReviewCount: 420, Address: "Jacob Road, Civil Lines",
			Amenities: []string{"Free Wi-Fi", "Restaurant", "AC", "Heritage decor"}},
	},
	"udaipur": {
		{Name: "Zostel Udaipur", Category: domain.CategoryHostel, PriceINR: 480,
			Rating: 4.4, ReviewCount: 760, Address: "Lal Ghat, Udaipur",
			Amenities:  []string{"Lake view", "Rooftop cafe", "Free Wi-Fi"},
			BookingURL: "https://www.zostel.com/zostel/udaipur/"},
		{Name: "Taj Lake Palace", Category: domain.CategoryHotel, PriceINR: 45000,
			Rating: 4.9, ReviewCount: 1100, Address: "Lake Pichola, Udaipur",
			Amenities: []string{"Lake setting", "Pool", "Spa", "Multiple restaurants"}},
		{Name: "Raas Devigarh", Category: domain.CategoryHotel, PriceINR: 22000,
			Rating: 4.7, ReviewCount: 380, Address: "Delwara, near Udaipur",
			Amenities: []string{"Heritage palace", "Pool", "Spa", "Panoramic views"}},
		{Name: "Nukkad Guesthouse", Category: domain.CategoryGuesthouse, PriceINR: 1100,
			Rating: 4.5, ReviewCount: 850, Address: "Gangaur Ghat Road",
			Amenities: []string{"Lake view", "Rooftop", "Home-cooked food", "Free Wi-Fi"}},
	},
	"varanasi": {
		{Name: "Brijrama Palace", Category: domain.CategoryHotel, PriceINR: 12000,
			Rating: 4.7, ReviewCount: 620, Address: "Darbhanga Ghat, Varanasi",
			Amenities: []string{"Heritage palace", "Ganga view", "Restaurant", "Yoga"}},
		{Name: "Stays by Ramada Varanasi", Category: domain.CategoryHotel, PriceINR: 4500,
			Rating: 4.0, ReviewCount: 480, Address: "Nadesar Palace, Varanasi",
			Amenities: []string{"Pool", "Restaurant", "Free Wi-Fi", "Airport transfer"}},
		{Name: "Ghat View Guesthouse", Category: domain.CategoryGuesthouse, PriceINR: 700,
			Rating: 4.2, ReviewCount: 530, Address: "Assi Ghat, Varanasi",
			Amenities: []string{"Ganga view", "Rooftop", "Free Wi-Fi"}},
	},
	"coorg": {
		{Name: "Orange County Resort", Category: domain.CategoryResort, PriceINR: 18000,
			Rating: 4.8, ReviewCount: 540, Address: "Siddapur, Coorg",
			Amenities: []string{"Coffee estate", "Pool", "Spa", "Multiple dining", "Activities"}},
		{Name: "Tamara Coorg", Category: domain.CategoryResort, PriceINR: 14000,
			Rating: 4.6, ReviewCount: 380, Address: "Yavakapadi Village, Coorg",
			Amenities: []string{"Hilltop location", "Pool", "Spa", "Restaurant", "Nature walks"}},
		{Name: "Rainforest Retreat", Category: domain.CategoryHomestay, PriceINR: 3500,
			Rating: 4.7, ReviewCount: 260, Address: "Galibeedu, Madikeri",
			Amenities: []string{"Organic farm", "Nature trails", "Home-cooked meals", "Wi-Fi"}},
	},
	"ladakh": {
		{Name: "The Grand Dragon Ladakh", Category: domain.CategoryHotel, PriceINR: 7500,
			Rating: 4.6, ReviewCount: 480, Address: "Upper Tukcha Road, Leh",
			Amenities: []string{"Mountain view", "Restaurant", "Heated rooms", "Travel desk"}},
		{Name: "Zostel Leh", Category: domain.CategoryHostel, PriceINR: 700,
			Rating: 4.5, ReviewCount: 920, Address: "Fort Road, Leh",
			Amenities:  []string{"Free Wi-Fi", "Common area", "Travel tips desk", "Mountain view"},
			BookingURL: "https://www.zostel.com/zostel/leh/"},
		{Name: "Nimmu House", Category: domain.CategoryHomestay, PriceINR: 2200,
			Rating: 4.8, ReviewCount: 195, Address: "Nimmu Village, Leh",
			Amenities: []string{"Traditional Ladakhi home", "Home-cooked meals", "Stargazing"}},
		{Name: "Saboo Resorts", Category: domain.CategoryResort, PriceINR: 12000,
			Rating: 4.4, ReviewCount: 220, Address: "Saboo Village, Leh",
			Amenities: []string{"Heated rooms", "Restaurant", "Mountain view", "Garden"}},
	},
	"hampi": {
		{Name: "Zostel Hampi", Category: domain.CategoryHostel, PriceINR: 450,
			Rating: 4.6, ReviewCount: 1240, Address: "Virupapur Gaddi, Hampi",
			Amenities:  []string{"River view", "Rooftop", "Free Wi-Fi", "Chill vibe"},
			BookingURL: "https://www.zostel.com/zostel/hampi/"},
		{Name: "Evolve Back Kamlapura Palace", Category: domain.CategoryResort, PriceINR: 22000,
			Rating: 4.8, ReviewCount: 290, Address: "Kamlapura, Hampi",
			Amenities: []string{"Heritage", "Pool", "Spa", "Gourmet restaurant", "Ruins view"}},
		{Name: "Kishkinda Heritage Resort", Category: domain.CategoryHotel, PriceINR: 4500,
			Rating: 4.3, ReviewCount: 320, Address: "Anegundi, Hampi",
			Amenities: []string{"Heritage property", "Free Wi-Fi", "Home-cooked food"}},
	},
	"darjeeling": {
		{Name: "Windamere Hotel", Category: domain.CategoryHotel, PriceINR: 9500,
			Rating: 4.5, ReviewCount: 310, Address: "Observatory Hill, Darjeeling",
			Amenities: []string{"Colonial heritage", "Mountain view", "Restaurant", "Garden"}},
		{Name: "Mayfair Darjeeling", Category: domain.CategoryHotel, PriceINR: 14000,
			Rating: 4.7, ReviewCount: 420, Address: "The Mall, Darjeeling",
			Amenities: []string{"Heritage hotel", "Kanchenjunga view", "Restaurant", "Spa"}},
		{Name: "Andy's Guesthouse", Category: domain.CategoryGuesthouse, PriceINR: 800,
			Rating: 4.4, ReviewCount: 560, Address: "HD Lama Road, Darjeeling",
			Amenities: []string{"Mountain view", "Home-cooked breakfast", "Free Wi-Fi"}},
	},
	"kasol": {
		{Name: "Kiran Guest House", Category: domain.CategoryGuesthouse, PriceINR: 700,
			Rating: 4.2, ReviewCount: 380, Address: "Main Kasol Village",
			Amenities: []string{"River view", "Basic rooms", "Cafe attached"}},
		{Name: "Parvati Camping", Category: domain.CategoryCamp, PriceINR: 1000,
			Rating: 4.5, ReviewCount: 210, Address: "Kasol Riverbank",
			Amenities: []string{"Riverside", "Bonfire", "Meals included", "Tent accommodation"}},
		{Name: "The Hosteller Kasol", Category: domain.CategoryHostel, PriceINR: 600,
			Rating: 4.3, ReviewCount: 490, Address: "Main Kasol Market",
			Amenities: []string{"Dorm and private", "Free Wi-Fi", "Cafe", "River view"}},
	},
}

// genericEntries back destinations the catalogue does not know. The spread
// covers every price tier below luxury, so one option always survives a
// reasonable budget cap.
var genericEntries = []entry{
	{Name: "Budget Traveller Hostel", Category: domain.CategoryHostel, PriceINR: 500,
		Rating: 3.9, ReviewCount: 120, Address: "Town Centre",
		Amenities: []string{"Free Wi-Fi", "Common area", "Lockers"}},
	{Name: "Heritage Guesthouse", Category: domain.CategoryGuesthouse, PriceINR: 1200,
		Rating: 4.1, ReviewCount: 85, Address: "Old Town",
		Amenities: []string{"Home-cooked meals", "Free Wi-Fi", "Local tips"}},
	{Name: "Mid-Range City Hotel", Category: domain.CategoryHotel, PriceINR: 2800,
		Rating: 4.0, ReviewCount: 340, Address: "City Centre",
		Amenities: []string{"AC", "Restaurant", "Free Wi-Fi", "Parking"}},
	{Name: "Premium Business Hotel", Category: domain.CategoryHotel, PriceINR: 6500,
		Rating: 4.3, ReviewCount: 580, Address: "Commercial District",
		Amenities: []string{"Pool", "Restaurant", "Gym", "Free Wi-Fi", "Room service"}},
}
