package opentripmap

// place is one entry from the radius search
// (GET /places/radius?format=json).
type place struct {
	XID   string     `json:"xid"`
	Name  string     `json:"name"`
	Kinds string     `json:"kinds"`
	Rate  int        `json:"rate"`
	Dist  float64    `json:"dist"`
	Point placePoint `json:"point"`
}

type placePoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// placeDetail is the per-place detail response (GET /places/xid/{xid}).
type placeDetail struct {
	Name              string        `json:"name"`
	Address           detailAddress `json:"address"`
	Preview           detailPreview `json:"preview"`
	WikipediaExtracts wikiExtracts  `json:"wikipedia_extracts"`
}

type detailAddress struct {
	Road   string `json:"road"`
	Suburb string `json:"suburb"`
	City   string `json:"city"`
	Town   string `json:"town"`
	State  string `json:"state"`
}

type detailPreview struct {
	Source string `json:"source"`
}

type wikiExtracts struct {
	Title string `json:"title"`
}
