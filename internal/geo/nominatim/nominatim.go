// Package nominatim resolves places through an OpenStreetMap Nominatim
// server. Zones come from the latlong shapes at the returned coordinate.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vbonduro/taptime/internal/catalog"
	"github.com/vbonduro/taptime/internal/domain"
	"github.com/vbonduro/taptime/internal/geo"
	"github.com/vbonduro/taptime/internal/geo/offline"
)

const DefaultURL = "https://nominatim.openstreetmap.org"

type address struct {
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	State       string `json:"state"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

type place struct {
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     address `json:"address"`
	Error       string  `json:"error"`
}

type Resolver struct {
	host      string
	userAgent string
	client    *http.Client
	zoneAt    offline.ZoneLookup
}

func NewResolver(host, userAgent string) *Resolver {
	return &Resolver{
		host:      strings.TrimRight(host, "/"),
		userAgent: userAgent,
		client:    &http.Client{},
		zoneAt:    offline.DefaultLookup(),
	}
}

// WithZoneLookup replaces the coordinate to zone lookup.
func (r *Resolver) WithZoneLookup(lookup offline.ZoneLookup) *Resolver {
	r.zoneAt = lookup
	return r
}

func (r *Resolver) ReverseGeocode(ctx context.Context, c domain.Coordinate) (*geo.Place, error) {
	if err := geo.ValidateCoordinate(c); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(c.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.Longitude, 'f', -1, 64))
	q.Set("zoom", "10")
	q.Set("addressdetails", "1")
	q.Set("accept-language", "en")

	var p place
	if err := r.get(ctx, "/reverse", q, &p); err != nil {
		return nil, err
	}
	// Nominatim answers open water with {"error": "Unable to geocode"}.
	if p.Error != "" || (p.Address.Country == "" && p.Address.State == "") {
		return nil, geo.ErrNoResult
	}

	zone, err := offline.ZoneAt(r.zoneAt, c)
	if err != nil {
		return nil, err
	}
	return toPlace(p, zone, c), nil
}

func (r *Resolver) ForwardGeocode(ctx context.Context, query string) (*geo.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, geo.ErrNoResult
	}

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("q", query)
	q.Set("limit", "1")
	q.Set("addressdetails", "1")
	q.Set("accept-language", "en")

	var results []place
	if err := r.get(ctx, "/search", q, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, geo.ErrNoResult
	}

	p := results[0]
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", p.Lon, err)
	}
	c := domain.Coordinate{Latitude: lat, Longitude: lon}

	zone, err := offline.ZoneAt(r.zoneAt, c)
	if err != nil {
		return nil, err
	}
	return toPlace(p, zone, c), nil
}

func (r *Resolver) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.host+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func toPlace(p place, zone string, c domain.Coordinate) *geo.Place {
	name := p.Name
	for _, n := range []string{p.Address.City, p.Address.Town, p.Address.Village} {
		if n != "" {
			name = n
			break
		}
	}
	code := strings.ToUpper(p.Address.CountryCode)
	country := catalog.CountryName(code)
	if country == "" {
		country = p.Address.Country
	}
	return &geo.Place{
		Name:        name,
		Country:     country,
		CountryCode: code,
		ZoneID:      zone,
		Coordinate:  c,
	}
}
