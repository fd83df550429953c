package amadeus

import "strings"

// cityToIATA maps lowercase Indian destination names to IATA city codes.
// Covers cities with airports. Mountain and rural destinations have no code,
// which is expected: the chain falls through to the next provider.
var cityToIATA = map[string]string{
	"delhi": "DEL", "new delhi": "DEL",
	"mumbai": "BOM", "bombay": "BOM",
	"bangalore": "BLR", "bengaluru": "BLR",
	"chennai": "MAA", "madras": "MAA",
	"kolkata": "CCU", "calcutta": "CCU",
	"hyderabad": "HYD",
	"ahmedabad": "AMD",
	"pune":      "PNQ",
	"goa":       "GOI", "panaji": "GOI", "north goa": "GOI", "south goa": "GOI",
	"jaipur":  "JAI",
	"lucknow": "LKO",
	"kochi":   "COK", "cochin": "COK",
	"thiruvananthapuram": "TRV", "trivandrum": "TRV",
	"coimbatore":  "CJB",
	"bhubaneswar": "BBI",
	"vadodara":    "BDQ",
	"amritsar":    "ATQ",
	"varanasi":    "VNS", "banaras": "VNS",
	"agra":       "AGR",
	"chandigarh": "IXC",
	"leh":        "IXL", "ladakh": "IXL",
	"srinagar": "SXR", "kashmir": "SXR",
	"patna":     "PAT",
	"ranchi":    "IXR",
	"raipur":    "RPR",
	"nagpur":    "NAG",
	"indore":    "IDR",
	"bhopal":    "BHO",
	"jodhpur":   "JDH",
	"udaipur":   "UDR",
	"jaisalmer": "JSA",
	// Bagdogra is the nearest airport to Darjeeling.
	"darjeeling": "IXB",
	"siliguri":   "IXB",
	"guwahati":   "GAU",
	"imphal":     "IMF",
	"port blair": "IXZ", "andaman": "IXZ",
	"tirupati":        "TIR",
	"madurai":         "IXM",
	"tiruchirappalli": "TRZ", "trichy": "TRZ",
	"vishakhapatnam": "VTZ", "vizag": "VTZ",
	"mangalore":  "IXE",
	"hubli":      "HBX",
	"aurangabad": "IXU",
	"dibrugarh":  "DIB",
	"jorhat":     "JRH",
}

// resolveIATA returns the IATA city code for a destination, or the empty
// string when none is known.
func resolveIATA(city string) string {
	return cityToIATA[strings.ToLower(strings.TrimSpace(city))]
}
