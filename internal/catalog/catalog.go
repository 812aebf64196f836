package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"parkhub/internal/entities"
)

// facilities is the curated set of flagship locations shown when no remote
// inventory is available. Order here is the order results are returned in.
var facilities = []entities.ParkingFacility{
	{
		ID:             "ldn-city-center",
		Name:           "City Center Smart Parking",
		City:           "London",
		Country:        "United Kingdom",
		Address:        "1 Bishopsgate, London EC2N 3AQ",
		Coordinates:    entities.Coordinates{Lat: 51.5155, Lng: -0.0827},
		TotalSlots:     320,
		AvailableSlots: 48,
		HourlyRate:     8.5,
		Currency:       entities.CurrencyGBP,
		Amenities:      []string{entities.AmenityCovered, entities.AmenityEVCharging, entities.AmenitySecurity, entities.AmenityDisabledAccess},
	},
	{
		ID:             "nyc-midtown",
		Name:           "Midtown Skyline Parking",
		City:           "New York",
		Country:        "United States",
		Address:        "250 W 50th St, New York, NY 10019",
		Coordinates:    entities.Coordinates{Lat: 40.7626, Lng: -73.9863},
		TotalSlots:     220,
		AvailableSlots: 63,
		HourlyRate:     18,
		Currency:       entities.CurrencyUSD,
		Amenities:      []string{entities.AmenityCovered, entities.AmenitySecurity, entities.AmenityValet, entities.AmenityDisabledAccess},
	},
	{
		ID:             "blr-tech-park",
		Name:           "Tech Park Premium Parking",
		City:           "Bengaluru",
		Country:        "India",
		Address:        "Outer Ring Road, Marathahalli, Bengaluru, Karnataka",
		Coordinates:    entities.Coordinates{Lat: 12.9569, Lng: 77.7011},
		TotalSlots:     540,
		AvailableSlots: 132,
		HourlyRate:     150,
		Currency:       entities.CurrencyINR,
		Amenities:      []string{entities.AmenityCovered, entities.AmenityEVCharging, entities.AmenitySecurity},
	},
	{
		ID:             "dubai-marina",
		Name:           "Marina Waterfront Parking",
		City:           "Dubai",
		Country:        "United Arab Emirates",
		Address:        "Dubai Marina Walk, Dubai",
		Coordinates:    entities.Coordinates{Lat: 25.0803, Lng: 55.1394},
		TotalSlots:     410,
		AvailableSlots: 205,
		HourlyRate:     35,
		Currency:       entities.CurrencyUSD,
		Amenities:      []string{entities.AmenityCovered, entities.AmenitySecurity, entities.AmenityValet},
	},
	{
		ID:             "berlin-hbf",
		Name:           "Central Station Mobility Hub",
		City:           "Berlin",
		Country:        "Germany",
		Address:        "Europaplatz 1, 10557 Berlin",
		Coordinates:    entities.Coordinates{Lat: 52.5251, Lng: 13.3694},
		TotalSlots:     260,
		AvailableSlots: 91,
		HourlyRate:     6.5,
		Currency:       entities.CurrencyEUR,
		Amenities:      []string{entities.AmenityCovered, entities.AmenityEVCharging, entities.AmenitySecurity, entities.AmenityDisabledAccess},
	},
}

// aliasGroups are interchangeable place-name spellings. Matching any member
// of a group makes every member a candidate term.
var aliasGroups = [][]string{
	{"bengaluru", "bangalore", "bengalore", "blr"},
	{"mumbai", "bombay"},
	{"new york", "nyc", "new york city"},
	{"dubai", "دبي"},
}

// All returns the curated catalog in insertion order.
func All() []entities.ParkingFacility {
	out := make([]entities.ParkingFacility, len(facilities))
	copy(out, facilities)
	return out
}

// Normalize lowercases, strips diacritics, and drops everything that is not
// a letter, digit, underscore, hyphen, or whitespace. Queries and catalog
// fields go through the same transformation before comparison.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// transform chains are stateful, so build one per call
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Search returns every catalog entry whose normalized city, country, or name
// contains the normalized query or any of its aliases as a substring. An
// empty query returns the whole catalog. No ranking is applied.
func Search(query string) []entities.ParkingFacility {
	q := Normalize(query)
	if q == "" {
		return All()
	}

	terms := expandAliases(q)

	var matches []entities.ParkingFacility
	for _, f := range facilities {
		city := Normalize(f.City)
		country := Normalize(f.Country)
		name := Normalize(f.Name)
		for _, term := range terms {
			if strings.Contains(city, term) || strings.Contains(country, term) || strings.Contains(name, term) {
				matches = append(matches, f)
				break
			}
		}
	}
	return matches
}

func expandAliases(q string) []string {
	terms := []string{q}
	for _, group := range aliasGroups {
		for _, alias := range group {
			if Normalize(alias) != q {
				continue
			}
			for _, a := range group {
				if n := Normalize(a); n != q && n != "" {
					terms = append(terms, n)
				}
			}
			return terms
		}
	}
	return terms
}
