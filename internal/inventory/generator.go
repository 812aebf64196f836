package inventory

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"parkhub/internal/entities"
)

// facility archetypes with their pricing multiplier and name suffixes
type template struct {
	category string
	suffixes []string
	rateMult float64
}

var templates = []template{
	{"Mall & Retail Parking", []string{"Mall", "Plaza", "Shopping Center", "Retail Park"}, 0.8},
	{"Business District", []string{"Towers", "Business Park", "Corporate Center", "Office Complex"}, 1.2},
	{"Transit Hubs", []string{"Metro Station", "Terminal", "Transit Center", "Railway Station"}, 0.6},
	{"City Parking", []string{"Street Garage", "Municipal Lot", "City Center", "Public Square"}, 1.0},
	{"Premium & Valet", []string{"Grand Hotel", "Luxury Suites", "Valet Service", "Executive Garage"}, 2.5},
	{"Event Parking", []string{"Stadium", "Arena", "Convention Center", "Expo Hall"}, 1.5},
}

var directions = []string{"North", "South", "East", "West", "Central", "Upper", "Lower"}

var streets = []string{"Main St", "Park Ave", "Broadway", "High St", "Market Rd", "Station Rd"}

const kmPerDegree = 111.0

// Generator fabricates parking facilities around a center point. It stands in
// for a live inventory source behind a stable interface: callers hand it a
// center, display city/country, currency, and radius and get facilities back.
type Generator struct {
	rng   *rand.Rand
	clock func() time.Time
}

// New returns a Generator drawing from rng, or from a time-seeded source when
// rng is nil.
func New(rng *rand.Rand) *Generator {
	return NewWithClock(rng, time.Now)
}

// NewWithClock is New with an explicit clock, used by tests to pin the
// id timestamp.
func NewWithClock(rng *rand.Rand, clock func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, clock: clock}
}

// Around synthesizes at least 20 facilities within radiusKm of center.
// 15-25 facilities per km of radius, sampled uniformly over the disk
// (square-root-scaled radial distance, cos-corrected longitude). The
// approximation is for display only, not geodesically exact.
func (g *Generator) Around(center entities.Coordinates, city, country, currency string, radiusKm float64) []entities.ParkingFacility {
	density := 15 + g.rng.Float64()*10
	count := int(radiusKm * density)
	if count < 20 {
		count = 20
	}

	stamp := g.clock().UnixMilli()
	base := baseHourlyRate(currency)
	citySlug := slug(city)

	out := make([]entities.ParkingFacility, 0, count)
	for i := 0; i < count; i++ {
		tmpl := templates[g.rng.Intn(len(templates))]
		suffix := tmpl.suffixes[g.rng.Intn(len(tmpl.suffixes))]

		direction := ""
		if g.rng.Float64() > 0.7 {
			direction = directions[g.rng.Intn(len(directions))] + " "
		}

		total := 50 + g.rng.Intn(800)
		utilization := 0.2 + g.rng.Float64()*0.75 // 20% to 95% full
		available := int(float64(total) * (1 - utilization))

		rate := math.Round((base+g.rng.Float64()*base)*tmpl.rateMult*10) / 10

		amenities := make([]string, 0, len(entities.Amenities))
		for _, a := range entities.Amenities {
			if g.rng.Float64() > 0.5 {
				amenities = append(amenities, a)
			}
		}

		out = append(out, entities.ParkingFacility{
			ID:             fmt.Sprintf("loc-%s-%d-%d", citySlug, i, stamp),
			Name:           direction + city + " " + suffix,
			City:           city,
			Country:        country,
			Address:        fmt.Sprintf("%d %s", g.rng.Intn(999)+1, streets[g.rng.Intn(len(streets))]),
			Coordinates:    g.pointWithin(center, radiusKm),
			TotalSlots:     total,
			AvailableSlots: available,
			HourlyRate:     rate,
			Currency:       currency,
			Amenities:      amenities,
		})
	}
	return out
}

// pointWithin samples a uniformly distributed point on the radius disk.
// 1 degree latitude ~= 111 km; longitude shrinks by cos(latitude).
func (g *Generator) pointWithin(center entities.Coordinates, radiusKm float64) entities.Coordinates {
	r := math.Sqrt(g.rng.Float64()) * radiusKm
	theta := g.rng.Float64() * 2 * math.Pi

	dy := (r * math.Cos(theta)) / kmPerDegree
	dx := (r * math.Sin(theta)) / (kmPerDegree * math.Cos(center.Lat*(math.Pi/180)))

	return entities.Coordinates{Lat: center.Lat + dy, Lng: center.Lng + dx}
}

func baseHourlyRate(currency string) float64 {
	switch currency {
	case entities.CurrencyINR:
		return 40
	case entities.CurrencyGBP:
		return 4
	case entities.CurrencyEUR:
		return 3
	default:
		return 5
	}
}

func slug(city string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(city) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
