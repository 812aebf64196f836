package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Place is a resolved location with the address parts the search flow needs.
type Place struct {
	Lat         float64
	Lng         float64
	City        string
	Country     string
	CountryCode string
}

// Client talks to a Nominatim-compatible geocoding API. Calls are best-effort
// and single-attempt: callers degrade to local results on any failure rather
// than retrying.
type Client struct {
	base      string
	hc        *http.Client
	userAgent string
}

func NewClient(base, userAgent string) *Client {
	return &Client{
		base:      strings.TrimRight(base, "/"),
		hc:        &http.Client{Timeout: 10 * time.Second},
		userAgent: userAgent,
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		StateDistrict string `json:"state_district"`
		Country       string `json:"country"`
		CountryCode   string `json:"country_code"`
	} `json:"address"`
}

// Search geocodes a free-text query, returning the top candidate or
// (nil, nil) when the geocoder knows no such place.
func (c *Client) Search(ctx context.Context, query string) (*Place, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("q", query)
	params.Set("addressdetails", "1")
	params.Set("limit", "1")

	var places []nominatimPlace
	if err := c.get(ctx, c.base+"/search?"+params.Encode(), &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, nil
	}
	return toPlace(places[0])
}

// Reverse resolves coordinates to address parts.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (*Place, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	var place nominatimPlace
	if err := c.get(ctx, c.base+"/reverse?"+params.Encode(), &place); err != nil {
		return nil, err
	}
	if place.Lat == "" && place.DisplayName == "" {
		return nil, nil
	}
	place.Lat = strconv.FormatFloat(lat, 'f', -1, 64)
	place.Lon = strconv.FormatFloat(lng, 'f', -1, 64)
	return toPlace(place)
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	// Nominatim's usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func toPlace(p nominatimPlace) (*Place, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder returned bad latitude %q", p.Lat)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder returned bad longitude %q", p.Lon)
	}

	city := firstNonEmpty(p.Address.City, p.Address.Town, p.Address.Village, p.Address.StateDistrict)
	country := p.Address.Country
	if segments := strings.Split(p.DisplayName, ","); len(segments) > 0 {
		if city == "" {
			city = strings.TrimSpace(segments[0])
		}
		if country == "" {
			country = strings.TrimSpace(segments[len(segments)-1])
		}
	}

	return &Place{
		Lat:         lat,
		Lng:         lng,
		City:        city,
		Country:     country,
		CountryCode: p.Address.CountryCode,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
