package service

import (
	"context"
	"log"
	"strings"

	"parkhub/internal/catalog"
	"parkhub/internal/entities"
	"parkhub/internal/geocode"
)

// Search result provenance. Upstream failures degrade to catalog or empty
// results behind an HTTP 200; the source field is what lets a client tell
// "nothing found" apart from "nothing reachable".
const (
	SourceGenerated = "generated"
	SourceCatalog   = "catalog"
	SourceNone      = "none"
)

const (
	MinRadiusKm     = 2
	MaxRadiusKm     = 10
	DefaultRadiusKm = 5
)

// Geocoder resolves free text or coordinates to a place; both calls are
// best-effort and single-attempt.
type Geocoder interface {
	Search(ctx context.Context, query string) (*geocode.Place, error)
	Reverse(ctx context.Context, lat, lng float64) (*geocode.Place, error)
}

// FacilityGenerator fabricates inventory around a center point. It stands in
// for a live inventory source and can be swapped without touching callers.
type FacilityGenerator interface {
	Around(center entities.Coordinates, city, country, currency string, radiusKm float64) []entities.ParkingFacility
}

type SearchResult struct {
	Locations []entities.ParkingFacility
	Source    string
}

// SearchService orchestrates the search flow: geocode the input, synthesize
// inventory around the resolved point, and fall back to the curated catalog
// when the geocoder fails, knows nothing, or no query was given.
type SearchService struct {
	geocoder  Geocoder
	generator FacilityGenerator
}

func NewSearchService(geocoder Geocoder, generator FacilityGenerator) *SearchService {
	return &SearchService{geocoder: geocoder, generator: generator}
}

// Search runs one inventory lookup. Explicit coordinates take precedence over
// the free-text query. The radius is clamped to [MinRadiusKm, MaxRadiusKm].
// Search never fails: every upstream error degrades to a usable result.
func (s *SearchService) Search(ctx context.Context, query string, coords *entities.Coordinates, radiusKm float64) SearchResult {
	radiusKm = clampRadius(radiusKm)
	query = strings.TrimSpace(query)

	if coords != nil {
		return s.searchByCoordinates(ctx, *coords, radiusKm)
	}
	if query != "" {
		return s.searchByQuery(ctx, query, radiusKm)
	}
	return SearchResult{Locations: catalog.All(), Source: SourceCatalog}
}

func (s *SearchService) searchByCoordinates(ctx context.Context, coords entities.Coordinates, radiusKm float64) SearchResult {
	city, country, currency := "Nearby Location", "Unknown", entities.CurrencyUSD

	// reverse geocoding only improves display names; ignore failures
	place, err := s.geocoder.Reverse(ctx, coords.Lat, coords.Lng)
	if err != nil {
		log.Printf("Reverse geocoding failed for (%f, %f): %v", coords.Lat, coords.Lng, err)
	} else if place != nil {
		// a resolved place without a city name is still the caller's spot
		city = "Current Location"
		if place.City != "" {
			city = place.City
		}
		if place.Country != "" {
			country = place.Country
		}
		currency = entities.CurrencyForCountryCode(place.CountryCode)
	}

	generated := s.generator.Around(coords, city, country, currency, radiusKm)
	return SearchResult{Locations: generated, Source: SourceGenerated}
}

func (s *SearchService) searchByQuery(ctx context.Context, query string, radiusKm float64) SearchResult {
	place, err := s.geocoder.Search(ctx, query)
	if err != nil {
		log.Printf("Geocoding failed for %q: %v", query, err)
	}
	if err != nil || place == nil {
		local := catalog.Search(query)
		if len(local) == 0 {
			return SearchResult{Locations: []entities.ParkingFacility{}, Source: SourceNone}
		}
		return SearchResult{Locations: local, Source: SourceCatalog}
	}

	center := entities.Coordinates{Lat: place.Lat, Lng: place.Lng}
	generated := s.generator.Around(center, place.City, place.Country, entities.CurrencyForCountryCode(place.CountryCode), radiusKm)

	merged := dedupeByID(append(generated, catalog.Search(query)...))
	return SearchResult{Locations: merged, Source: SourceGenerated}
}

// dedupeByID keeps the first occurrence of each facility id, preserving order.
func dedupeByID(facilities []entities.ParkingFacility) []entities.ParkingFacility {
	seen := make(map[string]struct{}, len(facilities))
	out := facilities[:0]
	for _, f := range facilities {
		if _, ok := seen[f.ID]; ok {
			continue
		}
		seen[f.ID] = struct{}{}
		out = append(out, f)
	}
	return out
}

func clampRadius(radiusKm float64) float64 {
	if radiusKm < MinRadiusKm {
		return MinRadiusKm
	}
	if radiusKm > MaxRadiusKm {
		return MaxRadiusKm
	}
	return radiusKm
}
