// Package offline resolves places without network access, using the
// bradfitz/latlong zone shapes for coordinates and the catalog tables for
// names.
package offline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bradfitz/latlong"

	"github.com/vbonduro/taptime/internal/catalog"
	"github.com/vbonduro/taptime/internal/domain"
	"github.com/vbonduro/taptime/internal/geo"
)

// tablesMissing is what latlong returns when built without its data tables.
const tablesMissing = "tables not generated yet"

var zoneRegions = []string{"Africa", "America", "Asia", "Atlantic", "Australia", "Europe", "Indian", "Pacific"}

// ZoneLookup maps a coordinate to an IANA zone name, "" for open water.
type ZoneLookup func(lat, lon float64) string

type Resolver struct {
	lookup ZoneLookup
}

func NewResolver() *Resolver {
	return &Resolver{lookup: latlong.LookupZoneName}
}

// NewResolverWithLookup is used by tests and by resolvers that bring their
// own zone shapes.
func NewResolverWithLookup(lookup ZoneLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// ZoneAt returns the zone containing the coordinate.
func ZoneAt(lookup ZoneLookup, c domain.Coordinate) (string, error) {
	zone := lookup(c.Latitude, c.Longitude)
	if zone == tablesMissing {
		return "", errors.New("latlong zone tables are not available")
	}
	if zone == "" {
		return "", geo.ErrNoResult
	}
	return zone, nil
}

// DefaultLookup is the latlong shape lookup.
func DefaultLookup() ZoneLookup {
	return latlong.LookupZoneName
}

func (r *Resolver) ReverseGeocode(ctx context.Context, c domain.Coordinate) (*geo.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := geo.ValidateCoordinate(c); err != nil {
		return nil, err
	}
	zone, err := ZoneAt(r.lookup, c)
	if err != nil {
		return nil, err
	}
	p := placeForZone(zone)
	p.Coordinate = c
	return p, nil
}

// ForwardGeocode accepts zone identifiers, country names, capital cities,
// city names that appear in zone identifiers, and "City, Country" pairs.
// Capitals carry their coordinate; other places carry the (0,0) sentinel.
func (r *Resolver) ForwardGeocode(ctx context.Context, query string) (*geo.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, geo.ErrNoResult
	}

	if strings.Contains(q, "/") {
		if _, err := time.LoadLocation(q); err == nil {
			return placeForZone(q), nil
		}
	}

	if city, country, ok := strings.Cut(q, ","); ok {
		country, _, _ = strings.Cut(country, "·")
		hint, _ := catalog.CountryCode(strings.TrimSpace(country))
		if p, ok := r.resolveCity(strings.TrimSpace(city), hint); ok {
			return p, nil
		}
		if hint != "" {
			return r.resolveCountry(hint)
		}
		return nil, geo.ErrNoResult
	}

	if code, ok := catalog.CountryCode(q); ok {
		return r.resolveCountry(code)
	}

	if p, ok := r.resolveCity(q, ""); ok {
		return p, nil
	}
	return nil, geo.ErrNoResult
}

// resolveCountry picks the first curated zone, else the zone around the
// capital.
func (r *Resolver) resolveCountry(code string) (*geo.Place, error) {
	if zones := catalog.TimeZones(code); len(zones) > 0 {
		return placeForZone(zones[0]), nil
	}
	if c, ok := capitalSites[code]; ok {
		if zone, err := ZoneAt(r.lookup, c); err == nil {
			p := withCountry(placeForZone(zone), code)
			p.Coordinate = c
			return p, nil
		}
	}
	if zone, ok := probeZone(catalog.CountryName(code)); ok {
		return withCountry(placeForZone(zone), code), nil
	}
	if capital, ok := catalog.CapitalOf(code); ok {
		if zone, ok := probeZone(capital); ok {
			return withCountry(placeForZone(zone), code), nil
		}
	}
	return nil, fmt.Errorf("no zone known for %s: %w", catalog.CountryName(code), geo.ErrNoResult)
}

// resolveCity matches a capital, then a curated city, then a zone named
// after the city. A non-empty hint rejects matches in other countries.
func (r *Resolver) resolveCity(city, hint string) (*geo.Place, bool) {
	if city == "" {
		return nil, false
	}
	inHint := func(code string) bool { return hint == "" || code == hint }

	if code, ok := catalog.CapitalCityCountryCode(city); ok && inHint(code) {
		if p, ok := r.capitalPlace(city, code); ok {
			return p, true
		}
	}

	if zone, ok := curatedCityZone(city); ok {
		if code, _ := catalog.CountryCodeForZone(zone); inHint(code) {
			return placeForZone(zone), true
		}
	}

	if zone, ok := probeZone(city); ok {
		p := placeForZone(zone)
		if p.CountryCode == "" {
			if code, ok := catalog.CapitalCityCountryCode(city); ok {
				p = withCountry(p, code)
			} else if hint != "" {
				p = withCountry(p, hint)
			}
		}
		if inHint(p.CountryCode) {
			return p, true
		}
	}
	return nil, false
}

func (r *Resolver) capitalPlace(city, code string) (*geo.Place, bool) {
	key := strings.ToLower(city)
	name := catalog.TitleCase(key)

	coord, known := capitalSite(key, code)
	var zone string
	if known {
		if z, err := ZoneAt(r.lookup, coord); err == nil {
			zone = z
		}
	}
	if zone == "" {
		if zones := catalog.TimeZones(code); len(zones) == 1 {
			zone = zones[0]
		} else if z, ok := probeZone(city); ok {
			zone = z
		}
	}
	if zone == "" {
		return nil, false
	}

	p := withCountry(placeForZone(zone), code)
	p.Name = name
	p.Coordinate = coord
	return p, true
}

func placeForZone(zone string) *geo.Place {
	p := &geo.Place{Name: catalog.CityName(zone), ZoneID: zone}
	if code, ok := catalog.CountryCodeForZone(zone); ok {
		p = withCountry(p, code)
	}
	return p
}

func withCountry(p *geo.Place, code string) *geo.Place {
	p.CountryCode = code
	p.Country = catalog.CountryName(code)
	return p
}

func curatedCityZone(city string) (string, bool) {
	for _, z := range catalog.CuratedZones() {
		if strings.EqualFold(catalog.CityName(z), city) {
			return z, true
		}
	}
	return "", false
}

// probeZone tries "Region/City" identifiers built from a city name.
func probeZone(city string) (string, bool) {
	name := strings.ReplaceAll(catalog.TitleCase(strings.ToLower(city)), " ", "_")
	for _, region := range zoneRegions {
		id := region + "/" + name
		if _, err := time.LoadLocation(id); err == nil {
			return id, true
		}
	}
	return "", false
}
