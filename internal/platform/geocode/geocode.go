// Package geocode resolves free-form addresses and postal codes to
// coordinates via the OpenStreetMap Nominatim API.
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

// Point is a resolved WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves an address (and optional pincode) to a coordinate
// pair. A nil Point with a nil error means the address could not be
// resolved; callers treat that as "no coordinates available" rather than
// a failure.
type Geocoder interface {
	Geocode(ctx context.Context, address, pincode string) (*Point, error)
}

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	defaultTimeout = 5 * time.Second

	// Nominatim's usage policy requires an identifying user agent.
	userAgent = "creamery/1.0"
)

// Nominatim is a Geocoder backed by the public Nominatim search endpoint.
// Queries are biased to India to match the platform's service territory.
type Nominatim struct {
	baseURL string
	client  *http.Client
}

// NewNominatim builds a client against the public endpoint. Pass a
// non-empty baseURL to target a self-hosted instance (or a test server).
func NewNominatim(baseURL string) *Nominatim {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Nominatim{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves the address to a coordinate pair, or nil when
// Nominatim has no match.
func (n *Nominatim) Geocode(ctx context.Context, address, pincode string) (*Point, error) {
	// Either segment may be absent; a pincode-only lookup must not
	// start with a stray comma.
	segments := make([]string, 0, 3)
	if address != "" {
		segments = append(segments, address)
	}
	if pincode != "" {
		segments = append(segments, pincode)
	}
	segments = append(segments, "India")
	query := strings.Join(segments, ", ")

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")
	params.Set("countrycodes", "in")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: nominatim returned %s", resp.Status)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode: decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q: %w", results[0].Lon, err)
	}

	return &Point{Latitude: lat, Longitude: lon}, nil
}
