package entities

// Currency codes the checkout provider accepts, lowercase ISO 4217.
const (
	CurrencyUSD = "usd"
	CurrencyEUR = "eur"
	CurrencyGBP = "gbp"
	CurrencyINR = "inr"
)

// Amenity vocabulary for parking facilities.
const (
	AmenityCovered        = "covered"
	AmenityEVCharging     = "ev_charging"
	AmenitySecurity       = "security"
	AmenityValet          = "valet"
	AmenityDisabledAccess = "disabled_access"
)

// Amenities lists the full amenity vocabulary in display order.
var Amenities = []string{
	AmenityCovered,
	AmenityEVCharging,
	AmenitySecurity,
	AmenityValet,
	AmenityDisabledAccess,
}

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// ParkingFacility is a single parking location, curated or synthesized.
// Facilities are immutable once generated; availableSlots never exceeds
// totalSlots.
type ParkingFacility struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	City           string      `json:"city"`
	Country        string      `json:"country"`
	Address        string      `json:"address"`
	Coordinates    Coordinates `json:"coordinates"`
	TotalSlots     int         `json:"totalSlots"`
	AvailableSlots int         `json:"availableSlots"`
	HourlyRate     float64     `json:"hourlyRate"`
	Currency       string      `json:"currency"`
	Amenities      []string    `json:"amenities"`
}

// CurrencyForCountryCode maps an ISO 3166-1 alpha-2 country code to the
// currency charged for parking there. Unknown countries fall back to EUR.
func CurrencyForCountryCode(code string) string {
	switch code {
	case "us", "US":
		return CurrencyUSD
	case "gb", "GB":
		return CurrencyGBP
	case "in", "IN":
		return CurrencyINR
	default:
		return CurrencyEUR
	}
}
