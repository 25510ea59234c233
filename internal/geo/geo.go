// Package geo defines the geocoding contract used to turn coordinates and
// place names into IANA time zones.
package geo

import (
	"context"
	"errors"
	"fmt"

	"github.com/vbonduro/taptime/internal/catalog"
	"github.com/vbonduro/taptime/internal/domain"
)

// ErrNoResult is returned when a coordinate has no placemark (open ocean)
// or a query matches no place.
var ErrNoResult = errors.New("no geocoding result")

// Place is a resolved placemark. ZoneID may be empty when a backend only
// knows the country.
type Place struct {
	Name        string
	Country     string
	CountryCode string
	ZoneID      string
	Coordinate  domain.Coordinate
}

type Resolver interface {
	ReverseGeocode(ctx context.Context, c domain.Coordinate) (*Place, error)
	ForwardGeocode(ctx context.Context, query string) (*Place, error)
}

// ValidateCoordinate rejects latitudes outside [-90, 90] and longitudes
// outside [-180, 180].
func ValidateCoordinate(c domain.Coordinate) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("invalid latitude %v: must be between -90 and 90", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("invalid longitude %v: must be between -180 and 180", c.Longitude)
	}
	return nil
}

// LocationName builds the display name for a resolved place:
// "Country/City" when the placemark carries a country, the catalog's
// friendly zone name otherwise.
func LocationName(p Place) string {
	if p.Country != "" && p.ZoneID != "" {
		return p.Country + "/" + catalog.CityName(p.ZoneID)
	}
	if p.ZoneID != "" {
		return catalog.FriendlyName(p.ZoneID)
	}
	if p.Name != "" {
		return p.Name
	}
	return p.Country
}
