package amadeus

// tokenResponse is the OAuth2 client_credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// hotelListResponse is the Hotel List API response
// (GET /v1/reference-data/locations/hotels/by-city).
type hotelListResponse struct {
	Data []hotelListEntry `json:"data"`
}

type hotelListEntry struct {
	HotelID string `json:"hotelId"`
	Name    string `json:"name"`
}

// offersResponse is the Hotel Offers API response
// (GET /v3/shopping/hotel-offers).
type offersResponse struct {
	Data []hotelOffers `json:"data"`
}

type hotelOffers struct {
	Hotel  offerHotel `json:"hotel"`
	Offers []offer    `json:"offers"`
}

type offerHotel struct {
	HotelID   string       `json:"hotelId"`
	Name      string       `json:"name"`
	Rating    string       `json:"rating"`
	Latitude  *float64     `json:"latitude"`
	Longitude *float64     `json:"longitude"`
	Address   offerAddress `json:"address"`
	Amenities []string     `json:"amenities"`
}

type offerAddress struct {
	Lines []string `json:"lines"`
}

type offer struct {
	CheckInDate  string     `json:"checkInDate"`
	CheckOutDate string     `json:"checkOutDate"`
	Price        offerPrice `json:"price"`
}

type offerPrice struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
	Base     string `json:"base"`
}
