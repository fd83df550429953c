package opentripmap

import (
	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

type coords struct {
	Lat float64
	Lng float64
}

// destinationCoords geocodes popular Indian destinations, keyed by lowercase
// trimmed name. Used when the search params carry no coordinates. Values are
// destination-centre approximations.
var destinationCoords = map[string]coords{
	"manali":        {32.2396, 77.1887},
	"old manali":    {32.2521, 77.1743},
	"rishikesh":     {30.0869, 78.2676},
	"haridwar":      {29.9457, 78.1642},
	"kasol":         {32.0100, 77.3200},
	"kheerganga":    {32.0852, 77.3602},
	"spiti valley":  {32.2464, 78.0337},
	"kaza":          {32.2270, 78.0718},
	"coorg":         {12.3375, 75.8069},
	"madikeri":      {12.4244, 75.7382},
	"hampi":         {15.3350, 76.4600},
	"pushkar":       {26.4899, 74.5511},
	"mcleod ganj":   {32.2396, 76.3234},
	"dharamshala":   {32.2190, 76.3234},
	"darjeeling":    {27.0360, 88.2627},
	"ooty":          {11.4102, 76.6950},
	"kodaikanal":    {10.2381, 77.4892},
	"munnar":        {10.0889, 77.0595},
	"alleppey":      {9.4981, 76.3388},
	"alappuzha":     {9.4981, 76.3388},
	"varkala":       {8.7379, 76.7163},
	"pondicherry":   {11.9416, 79.8083},
	"ziro valley":   {27.5930, 93.8302},
	"majuli":        {26.9500, 94.1667},
	"chopta":        {30.4800, 79.2200},
	"kedarnath":     {30.7346, 79.0669},
	"gangotri":      {30.9942, 78.9381},
	"yamunotri":     {31.0205, 78.4645},
	"badrinath":     {30.7433, 79.4938},
	"vaishno devi":  {32.9883, 74.9550},
	"rann of kutch": {23.7337, 70.8022},
	"gokarna":       {14.5479, 74.3188},
	"wayanad":       {11.6854, 76.1320},
	"coimbatore":    {11.0168, 76.9558},
	"tirupati":      {13.6288, 79.4192},
	"jim corbett":   {29.5300, 78.7747},
	"ranthambore":   {26.0173, 76.5026},
	"kaziranga":     {26.5775, 93.1711},
	"meghalaya":     {25.4670, 91.3662},
	"shillong":      {25.5788, 91.8933},
	"cherrapunji":   {25.2817, 91.7263},
}

// resolveCoords prefers explicit coordinates from the params and falls back
// to the geocoding table.
func resolveCoords(params domain.SearchParams) (coords, bool) {
	if params.Lat != nil && params.Lng != nil {
		return coords{Lat: *params.Lat, Lng: *params.Lng}, true
	}
	c, ok := destinationCoords[params.DestinationKey()]
	return c, ok
}
